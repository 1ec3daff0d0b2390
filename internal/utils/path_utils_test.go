package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/utils"
)

func TestExtractFileNameTrimsSourceExtension(t *testing.T) {
	assert.Equal(t, "widget", utils.ExtractFileName("/src/app/widget.php"))
}

func TestContainingDirOfSourceFileIsItsParent(t *testing.T) {
	assert.Equal(t, "/src/app", utils.ContainingDir("/src/app/widget.php"))
}

func TestContainingDirOfPlainDirectoryIsUnchanged(t *testing.T) {
	assert.Equal(t, "/src/app", utils.ContainingDir("/src/app"))
}

func TestResolveIncludePathJoinsRelativePaths(t *testing.T) {
	assert.Equal(t, "/src/app/lib.php", utils.ResolveIncludePath("/src/app", "./lib.php"))
}

func TestResolveIncludePathLeavesAbsolutePathsAlone(t *testing.T) {
	assert.Equal(t, "/abs/lib.php", utils.ResolveIncludePath("/src/app", "/abs/lib.php"))
}
