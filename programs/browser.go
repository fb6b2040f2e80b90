package programs

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/juju/ratelimit"

	"github.com/josephlewis42/logos/core/interp"
)

// Browser fetches web pages: `navigate to example.com` replaces the
// buffer with the response body. A non-empty buffer is POSTed as the
// request body. Unsafe: left out of the sandbox library.
type Browser struct {
	interp.TextBuffer
	client         *http.Client
	bytesPerSecond int64
}

func NewBrowser(cfg Config, initialBuffer string) interp.Program {
	return &Browser{
		TextBuffer:     interp.NewTextBuffer(initialBuffer),
		client:         cfg.HTTPClient,
		bytesPerSecond: cfg.DownloadBytesPerSecond,
	}
}

func (b *Browser) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Browser", map[string]interp.Handler{
		"navigate": interp.FuncCommand(b.navigate),
	}, name)
}

func (b *Browser) navigate(args, buffer string) (string, error) {
	const argPrefix = "to "
	if !strings.HasPrefix(args, argPrefix) {
		return "", fmt.Errorf("navigate wants `to ADDRESS`, got %q", args)
	}
	url := "https://" + strings.TrimPrefix(args, argPrefix)

	var response *http.Response
	var err error
	if buffer != "" {
		response, err = b.client.Post(url, "text/plain", strings.NewReader(buffer))
	} else {
		response, err = b.client.Get(url)
	}
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	var body io.Reader = response.Body
	if b.bytesPerSecond > 0 {
		bucket := ratelimit.NewBucketWithRate(float64(b.bytesPerSecond), b.bytesPerSecond)
		body = ratelimit.Reader(response.Body, bucket)
	}

	contents, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

func init() {
	registerUnsafe("Browser", NewBrowser)
}
