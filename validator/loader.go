package validator

import (
	"bytes"
	"context"

	"github.com/friendsofgo/errors"
	"github.com/go-resty/resty/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/schoolyear/schematools/lib"
)

// httpLoader implements jsonschema.URLLoader on top of resty.
// Standard meta-schemas never reach it, the compiler resolves those itself.
type httpLoader struct {
	ctx    context.Context
	client *resty.Client
}

func (l *httpLoader) Load(url string) (any, error) {
	data, err := lib.DownloadFile(l.ctx, l.client, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load schema %s", url)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema %s", url)
	}
	return doc, nil
}
