package schedulerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goacesso/internal/pkg/logger"
	"goacesso/internal/repository/permissionrepo"
)

// versionCache registra os INCR e recusa contextos cancelados, como o go-redis faz.
type versionCache struct {
	incrs []string
}

func (c *versionCache) Get(context.Context, string) (string, error) { return "", nil }
func (c *versionCache) GetInt(context.Context, string) (int, error)  { return 0, nil }
func (c *versionCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (c *versionCache) Expire(context.Context, string, time.Duration) error { return nil }
func (c *versionCache) Delete(context.Context, ...string) error             { return nil }

func (c *versionCache) Incr(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.incrs = append(c.incrs, key)
	return int64(len(c.incrs)), nil
}

func TestInvalidateAfterWrite_IgnoresCallerCancel(t *testing.T) {
	c := &versionCache{}
	repo := NewScheduleRepository(nil, c, time.Second, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.invalidateAfterWrite(ctx, "key-1")

	require.Len(t, c.incrs, 1)
	assert.Equal(t, permissionrepo.VersionKey("key-1"), c.incrs[0])
}

func TestInvalidate_CancelledContextSkipsIncr(t *testing.T) {
	c := &versionCache{}
	repo := NewScheduleRepository(nil, c, time.Second, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Sem desacoplar o contexto o INCR falharia e o cache ficaria com a versão antiga.
	repo.invalidate(ctx, "key-1")

	assert.Empty(t, c.incrs)
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}

func TestInvalidateAfterWrite_NoCacheOrKey(t *testing.T) {
	repo := NewScheduleRepository(nil, nil, time.Second, logger.NewNopLogger())
	repo.invalidateAfterWrite(context.Background(), "key-1")

	c := &versionCache{}
	repo = NewScheduleRepository(nil, c, time.Second, logger.NewNopLogger())
	repo.invalidateAfterWrite(context.Background(), "")
	assert.Empty(t, c.incrs)
}
