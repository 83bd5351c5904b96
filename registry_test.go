// File: appconfig/registry_test.go
package appconfig_test

import (
	"testing"

	appconfig "github.com/jcomellas/app-config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("SetApp And Fetch", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.SetApp("myapp", appconfig.List{{Key: "name", Value: "x"}}))

		app, err := reg.Bind("myapp")
		require.NoError(t, err)
		assert.Equal(t, "x", app.String("name", ""))
	})

	t.Run("Set Creates Intermediate Sequences", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.Set("myapp", "db.pool.size", 10))
		require.NoError(t, reg.Set("myapp", "db.host", "localhost"))

		app, _ := reg.Bind("myapp")
		assert.Equal(t, int64(10), app.Int64("db.pool.size", -1))
		assert.Equal(t, "localhost", app.String("db.host", ""))
	})

	t.Run("Set Overwrites", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.Set("myapp", "port", 8080))
		require.NoError(t, reg.Set("myapp", "port", 9090))

		app, _ := reg.Bind("myapp")
		assert.Equal(t, int64(9090), app.Int64("port", -1))
	})

	t.Run("Set Validates Path", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		assert.Error(t, reg.Set("myapp", "", 1))
		assert.Error(t, reg.Set("myapp", "bad..path", 1))
		assert.Error(t, reg.Set("myapp", "sp ace", 1))
	})

	t.Run("Empty App Identifier", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		assert.ErrorIs(t, reg.SetApp("", nil), appconfig.ErrNoApp)
		assert.ErrorIs(t, reg.Set("", "key", 1), appconfig.ErrNoApp)

		_, err := reg.Unset("", "key")
		assert.ErrorIs(t, err, appconfig.ErrNoApp)
	})

	t.Run("Unset", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.Set("myapp", "db.host", "localhost"))
		require.NoError(t, reg.Set("myapp", "db.port", 5432))

		removed, err := reg.Unset("myapp", "db.port")
		require.NoError(t, err)
		assert.True(t, removed)

		app, _ := reg.Bind("myapp")
		_, ok := app.Fetch("db.port")
		assert.False(t, ok)
		assert.Equal(t, "localhost", app.String("db.host", ""))

		// Removing a subtree drops its children too
		removed, err = reg.Unset("myapp", "db")
		require.NoError(t, err)
		assert.True(t, removed)
		_, ok = app.Fetch("db.host")
		assert.False(t, ok)

		removed, err = reg.Unset("myapp", "db")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("DeleteApp", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.Set("myapp", "key", "v"))
		reg.DeleteApp("myapp")

		app, _ := reg.Bind("myapp")
		_, ok := app.Fetch("key")
		assert.False(t, ok)
	})

	t.Run("Registries Are Isolated", func(t *testing.T) {
		regA := appconfig.NewRegistry()
		regB := appconfig.NewRegistry()
		require.NoError(t, regA.Set("myapp", "key", "a"))
		require.NoError(t, regB.Set("myapp", "key", "b"))

		appA, _ := regA.Bind("myapp")
		appB, _ := regB.Bind("myapp")
		assert.Equal(t, "a", appA.String("key", ""))
		assert.Equal(t, "b", appB.String("key", ""))
	})

	t.Run("SetApp Copies Caller List", func(t *testing.T) {
		nested := appconfig.List{{Key: "port", Value: 5432}}
		values := appconfig.List{
			{Key: "name", Value: "orig"},
			{Key: "db", Value: nested},
		}

		reg := appconfig.NewRegistry()
		require.NoError(t, reg.SetApp("myapp", values))
		require.NoError(t, reg.Set("myapp", "name", "changed"))
		require.NoError(t, reg.Set("myapp", "db.port", 9999))

		// The caller's slices are untouched
		assert.Equal(t, "orig", values[0].Value)
		assert.Equal(t, 5432, nested[0].Value)

		app, _ := reg.Bind("myapp")
		assert.Equal(t, "changed", app.String("name", ""))
		assert.Equal(t, int64(9999), app.Int64("db.port", -1))
	})

	t.Run("Concurrent Set And Fetch", func(t *testing.T) {
		reg := appconfig.NewRegistry()
		require.NoError(t, reg.Set("myapp", "server.port", 0))
		app, _ := reg.Bind("myapp")

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 1; i <= 1000; i++ {
				_ = reg.Set("myapp", "server.port", i)
			}
		}()

		for i := 0; i < 1000; i++ {
			port := app.Int64("server.port", -1)
			assert.GreaterOrEqual(t, port, int64(0))
		}
		<-done

		assert.Equal(t, int64(1000), app.Int64("server.port", -1))
	})

	t.Run("Default Registry Helpers", func(t *testing.T) {
		defer appconfig.DeleteApp("registry-test-app")

		require.NoError(t, appconfig.Set("registry-test-app", "server.port", "8080"))
		app := appconfig.MustBind("registry-test-app")
		assert.Equal(t, int64(8080), app.Int64("server.port", -1))

		removed, err := appconfig.Unset("registry-test-app", "server.port")
		require.NoError(t, err)
		assert.True(t, removed)
	})
}
