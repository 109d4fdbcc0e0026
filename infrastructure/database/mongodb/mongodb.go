package mongodb

import (
	"context"
	"fmt"

	"github.com/vfg2006/admin-dashboard-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Conn interface {
	Collection(name string) *mongo.Collection
	Ping(context.Context) error
	Close(context.Context) error
}

type Connection struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URL).
		SetAppName("admin-dashboard-api").
		// Documentos aninhados sem tipo definido (OverallStat) viram bson.M
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(cfg.ConnectTimeout)

		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	conn := &Connection{
		client:   client,
		database: client.Database(cfg.Name),
	}

	if err := conn.Ping(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return conn, nil
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
