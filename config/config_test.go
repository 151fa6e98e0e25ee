package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/config/sessionscope.yaml"
	doc := []byte("snapshotURL: mem://localhost/scopes\nlogLevel: debug\nlogFormat: text\n")
	require.NoError(t, afs.New().Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(doc)))

	cfg, err := Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "mem://localhost/scopes", cfg.SnapshotURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_MissingDocument(t *testing.T) {
	_, err := Load(context.Background(), "mem://localhost/config/absent.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/config/broken.yaml"
	require.NoError(t, afs.New().Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader([]byte("snapshotURL: ["))))

	_, err := Load(ctx, URL)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{LogLevel: "warn", LogFormat: "json"}).Validate())
	assert.Error(t, (&Config{LogLevel: "verbose"}).Validate())
	assert.Error(t, (&Config{LogFormat: "xml"}).Validate())
}
