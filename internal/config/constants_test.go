package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/config"
)

func TestTrimSourceExtStripsRecognizedExtension(t *testing.T) {
	assert.Equal(t, "widget", config.TrimSourceExt("widget.php"))
	assert.Equal(t, "widget", config.TrimSourceExt("widget.phtml"))
	assert.Equal(t, "widget.txt", config.TrimSourceExt("widget.txt"))
}

func TestHasSourceExtRecognizesAllVariants(t *testing.T) {
	assert.True(t, config.HasSourceExt("a/b/c.php5"))
	assert.False(t, config.HasSourceExt("a/b/c.go"))
}
