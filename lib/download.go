package lib

import (
	"context"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/go-resty/resty/v2"
)

const (
	downloadTimeout    = 10 * time.Second
	downloadRetryCount = 2
)

// NewDownloadClient returns the client used to fetch remote schemas
func NewDownloadClient() *resty.Client {
	return resty.New().
		SetTimeout(downloadTimeout).
		SetRetryCount(downloadRetryCount).
		SetHeader("Accept", "application/schema+json, application/json")
}

func DownloadFile(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make request to download file")
	}

	if !res.IsSuccess() {
		return nil, errors.Errorf("failed to download file (%d): %s", res.StatusCode(), string(res.Body()))
	}

	return res.Body(), nil
}
