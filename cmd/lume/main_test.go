package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lume/internal/adapters/medialib"
	"go.trai.ch/lume/internal/adapters/scan"
	"go.trai.ch/lume/internal/app"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports/mocks"
	"go.trai.ch/lume/internal/engine/catalog"
	"go.trai.ch/lume/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

// newComponents builds a real App over an in-memory library.
func newComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	lib, err := medialib.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })

	opts := domain.DefaultOptions()
	store := catalog.NewStore(lib, lib, reconcile.ForSource(lib, opts), log, opts)
	scanner := scan.NewScanner(lib, log)

	return &app.Components{
		App:     app.New(store, lib, scanner, lib, log),
		Logger:  log,
		Options: opts,
	}
}

func provider(c *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return c, func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, stderr, provider(newComponents(t)))
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRun_InitFailure(t *testing.T) {
	stderr := new(bytes.Buffer)
	failing := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph cycle")
	}

	code := run(context.Background(), []string{"version"}, stderr, failing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "graph cycle")
}

func TestRun_PermissionDeniedExitCode(t *testing.T) {
	components := newComponents(t)

	// Force a denied library so catalog building is blocked.
	ctx := context.Background()
	_, err := components.App.Grant(ctx, app.GrantDeny, nil)
	require.NoError(t, err)

	stderr := new(bytes.Buffer)
	code := run(ctx, []string{"photos", "time_0_abc"}, stderr, provider(components))
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "lume grant full")
}

func TestRun_UnknownCommand(t *testing.T) {
	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"definitely-not-a-command"}, stderr, provider(newComponents(t)))
	assert.Equal(t, 1, code)
}
