package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := resp.Status()
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	return &StatusError{
		StatusCode: resp.StatusCode(),
		Status:     status,
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}
