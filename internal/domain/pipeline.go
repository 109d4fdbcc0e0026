package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StageKind identifica a variante de um estágio do pipeline de agregação
type StageKind int

const (
	StageMatch StageKind = iota + 1
	StageFilter
	StageCoerce
	StageSort
	StageSkip
	StageLimit
	StageLookup
	StageUnwind
)

var stageKindNames = map[StageKind]string{
	StageMatch:  "match",
	StageFilter: "filter",
	StageCoerce: "coerce",
	StageSort:   "sort",
	StageSkip:   "skip",
	StageLimit:  "limit",
	StageLookup: "lookup",
	StageUnwind: "unwind",
}

func (k StageKind) String() string {
	if name, ok := stageKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(k))
}

// Stage é um estágio do pipeline. A execução fica a cargo do repositório
// (Mongo ou memória); aqui só existe a forma.
type Stage interface {
	Kind() StageKind
}

// Pipeline é a sequência ordenada de estágios
type Pipeline []Stage

// Kinds devolve a forma do pipeline, útil em testes e logs
func (p Pipeline) Kinds() []StageKind {
	kinds := make([]StageKind, 0, len(p))
	for _, stage := range p {
		kinds = append(kinds, stage.Kind())
	}
	return kinds
}

// MatchStage seleciona o documento com o _id informado
type MatchStage struct {
	ID primitive.ObjectID
}

// FilterStage é a disjunção de buscas por substring, sem diferenciar
// maiúsculas, sobre Fields. Search vazio casa com todos os documentos.
type FilterStage struct {
	Search string
	Fields []string
}

// MatchesAll indica que o filtro não restringe nada
func (s FilterStage) MatchesAll() bool {
	return s.Search == "" || len(s.Fields) == 0
}

// CoerceStage reinterpreta o texto de Field como número para o resto do pipeline.
// Valores que não são números viram null.
type CoerceStage struct {
	Field string
}

// SortStage com Order nil mantém a ordem natural do banco
type SortStage struct {
	Order *SortOrder
}

type SkipStage struct {
	N int64
}

type LimitStage struct {
	N int64
}

// LookupStage junta documentos de From onde ForeignField == LocalField,
// gravando a lista em As
type LookupStage struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
}

// UnwindStage achata a lista em Path; documentos com lista vazia somem
type UnwindStage struct {
	Path string
}

func (MatchStage) Kind() StageKind  { return StageMatch }
func (FilterStage) Kind() StageKind { return StageFilter }
func (CoerceStage) Kind() StageKind { return StageCoerce }
func (SortStage) Kind() StageKind   { return StageSort }
func (SkipStage) Kind() StageKind   { return StageSkip }
func (LimitStage) Kind() StageKind  { return StageLimit }
func (LookupStage) Kind() StageKind { return StageLookup }
func (UnwindStage) Kind() StageKind { return StageUnwind }
