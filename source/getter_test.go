package source

import (
	"context"
	"os"
	"testing"

	"github.com/gruntwork-io/cfn-docgen/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetterSourceDownloadsLocalDirectory(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	writePage(t, srcDir, "aws-resource-sqs-queue.md", "# AWS::SQS::Queue\n")
	writePage(t, srcDir, "aws-properties-s3-bucket.md", "# AWS::S3::Bucket\n")

	opts := testOptions(t)
	opts.SourceURL = srcDir

	src := NewGetterSource(opts)

	files, err := src.Files(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, file := range files {
		assert.FileExists(t, file)
	}

	content, err := util.ReadFileAsString(files[0])
	require.NoError(t, err)
	assert.Equal(t, "# AWS::SQS::Queue\n", content)

	// The download must be a real copy, not a symlink back into srcDir.
	downloadDir := util.JoinPath(src.tmpDir, "pages")
	info, err := os.Lstat(downloadDir)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	tmpDir := src.tmpDir
	require.NoError(t, src.Close())
	assert.NoDirExists(t, tmpDir)
	assert.FileExists(t, util.JoinPath(srcDir, "aws-resource-sqs-queue.md"), "Close must never touch the original files")
}

func TestGetterSourceMissingSource(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	opts.SourceURL = util.JoinPath(t.TempDir(), "no-such-dir")

	src := NewGetterSource(opts)
	defer src.Close()

	_, err := src.Files(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error downloading documentation pages from")
}

func TestGetterSourceCloseBeforeFiles(t *testing.T) {
	t.Parallel()

	src := NewGetterSource(testOptions(t))
	assert.NoError(t, src.Close())
	assert.NoError(t, src.Close())
}
