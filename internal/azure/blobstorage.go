package azure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/common"
	"github.com/allsafeASM/lookup/internal/models"
)

// BlobStorageClient wraps Azure Blob Storage operations
type BlobStorageClient struct {
	client        *azblob.Client
	containerName string
}

// NewBlobStorageClient creates a new Blob Storage client
func NewBlobStorageClient(connectionString, containerName string) (*BlobStorageClient, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob storage client: %w", err)
	}

	return &BlobStorageClient{
		client:        client,
		containerName: containerName,
	}, nil
}

// ResultBlobName returns the blob path of a lookup result
func ResultBlobName(task models.Task, lookupID string) string {
	return fmt.Sprintf("results/%s/%s.json", task, lookupID)
}

// StoreTaskResult stores a task result in blob storage and returns its blob name
func (b *BlobStorageClient) StoreTaskResult(ctx context.Context, result *models.TaskResult) (string, error) {
	blobName := ResultBlobName(result.Task, result.LookupID)

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal task result: %w", err)
	}

	_, err = b.client.UploadBuffer(ctx, b.containerName, blobName, resultJSON, &azblob.UploadBufferOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload task result to blob storage: %w", err)
	}

	gologger.Info().Msgf("Stored task result in blob: %s/%s", b.containerName, blobName)
	return blobName, nil
}

// GetTaskResult retrieves a stored lookup result
func (b *BlobStorageClient) GetTaskResult(ctx context.Context, task models.Task, lookupID string) (*models.TaskResult, error) {
	response, err := b.client.DownloadStream(ctx, b.containerName, ResultBlobName(task, lookupID), nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return nil, common.NewNotFoundError(fmt.Sprintf("no %s result for lookup %s", task, lookupID), err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download task result from blob storage: %w", err)
	}
	defer response.Body.Close()

	var result models.TaskResult
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode task result JSON: %w", err)
	}

	return &result, nil
}

// ListTaskResults lists the blob names of all results for a task type
func (b *BlobStorageClient) ListTaskResults(ctx context.Context, task models.Task) ([]string, error) {
	blobNames := []string{}
	prefix := fmt.Sprintf("results/%s/", task)

	pager := b.client.NewListBlobsFlatPager(b.containerName, &azblob.ListBlobsFlatOptions{
		Prefix: &prefix,
	})

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list blobs: %w", err)
		}

		for _, blob := range page.Segment.BlobItems {
			blobNames = append(blobNames, *blob.Name)
		}
	}

	return blobNames, nil
}
