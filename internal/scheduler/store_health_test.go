package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admin-dashboard-api/internal/config"
)

type fakePinger struct {
	err   error
	calls int32
}

func (p *fakePinger) Ping(ctx context.Context) error {
	atomic.AddInt32(&p.calls, 1)
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.err
}

func TestStoreHealthService_Check(t *testing.T) {
	pinger := &fakePinger{}
	service := NewStoreHealthService(pinger, config.StoreHealth{CronSchedule: "*/5 * * * *", Enabled: true})

	initial := service.GetStatus()
	assert.False(t, initial.Checked)
	assert.False(t, initial.Healthy)
	assert.Equal(t, "*/5 * * * *", initial.CronSchedule)

	status := service.Check(context.Background())
	assert.True(t, status.Checked)
	assert.True(t, status.Healthy)
	assert.Empty(t, status.LastError)
	assert.False(t, status.LastCheckedAt.IsZero())

	pinger.err = errors.New("server selection timeout")
	status = service.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.Equal(t, "server selection timeout", status.LastError)
	assert.Equal(t, status, service.GetStatus())

	pinger.err = nil
	status = service.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Empty(t, status.LastError)
}

func TestStoreHealthService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nem verifica", func(t *testing.T) {
		pinger := &fakePinger{}
		service := NewStoreHealthService(pinger, config.StoreHealth{CronSchedule: "*/5 * * * *", Enabled: false})

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, int32(0), atomic.LoadInt32(&pinger.calls))
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		service := NewStoreHealthService(&fakePinger{}, config.StoreHealth{CronSchedule: "não é cron", Enabled: true})

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado verifica na partida", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		pinger := &fakePinger{}
		service := NewStoreHealthService(pinger, config.StoreHealth{CronSchedule: "0 0 1 1 *", Enabled: true})

		require.NoError(t, service.Start(ctx))
		assert.GreaterOrEqual(t, atomic.LoadInt32(&pinger.calls), int32(1))
		assert.True(t, service.GetStatus().Healthy)
	})
}
