// Package memory implementa os repositórios sobre um banco de documentos em
// memória. Os estágios do domínio são interpretados aqui com a mesma semântica
// do MongoDB para os campos de primeiro nível.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewStore() *Store {
	return &Store{
		collections: make(map[string][]bson.M),
	}
}

// Insert grava os documentos na coleção na ordem recebida, que passa a ser a
// ordem natural da coleção
func (s *Store) Insert(collection string, docs ...any) error {
	converted := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		m, err := toDocument(doc)
		if err != nil {
			return errors.Wrapf(err, "erro ao converter documento para a coleção %s", collection)
		}
		converted = append(converted, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], converted...)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Count retorna o tamanho da coleção
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collections[collection])), nil
}

// FindByID retorna uma cópia do documento ou nil quando não existe
func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if equalValues(doc["_id"], id) {
			return copyDocument(doc), nil
		}
	}

	return nil, nil
}

// Find retorna cópias dos documentos aceitos por match, na ordem natural
func (s *Store) Find(ctx context.Context, collection string, match func(bson.M) bool) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]bson.M, 0)
	for _, doc := range s.collections[collection] {
		if match == nil || match(doc) {
			docs = append(docs, copyDocument(doc))
		}
	}

	return docs, nil
}

// snapshot copia apenas a fatia; os estágios que alteram documentos criam cópias
func (s *Store) snapshot(collection string) []bson.M {
	docs := s.collections[collection]
	out := make([]bson.M, len(docs))
	copy(out, docs)
	return out
}

func toDocument(v any) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return readDocument(data)
}

func readDocument(data []byte) (bson.M, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var doc bson.M
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// decode converte o documento para o tipo do domínio usando os mesmos codecs
// BSON do driver
func decode(doc bson.M, out any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}

func copyDocument(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
