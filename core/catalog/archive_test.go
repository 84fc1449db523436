package catalog_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"card-manager/core/catalog"
	"card-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestArchiver_ArchiveFeeds(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "feed-archive").Return(true, nil)

	var stored [][]byte
	mockClient.On("PutObject", mock.Anything, "feed-archive",
		mock.MatchedBy(func(name string) bool { return true }),
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			payload, _ := io.ReadAll(args.Get(3).(*bytes.Reader))
			stored = append(stored, payload)
		}).
		Return(minio.UploadInfo{}, nil)

	archiver := catalog.NewArchiver(mockClient, "feed-archive", zap.NewNop())
	archiver.ArchiveFeeds(context.Background(), []byte(`[{"p":1}]`), []byte(`[{"g":2}]`))

	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
	// The archive stores the exact fetched bytes.
	assert.Equal(t, []byte(`[{"p":1}]`), stored[0])
	assert.Equal(t, []byte(`[{"g":2}]`), stored[1])
}

func TestArchiver_CreatesMissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "feed-archive").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "feed-archive", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "feed-archive", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	archiver := catalog.NewArchiver(mockClient, "feed-archive", zap.NewNop())
	archiver.ArchiveFeeds(context.Background(), []byte(`[]`), []byte(`[]`))

	mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "feed-archive", mock.Anything)
}

func TestArchiver_FailureIsBestEffort(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "feed-archive").
		Return(false, fmt.Errorf("storage down"))

	archiver := catalog.NewArchiver(mockClient, "feed-archive", zap.NewNop())
	// Must not panic or propagate the error.
	archiver.ArchiveFeeds(context.Background(), []byte(`[]`), []byte(`[]`))

	mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
