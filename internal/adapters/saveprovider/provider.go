package saveprovider

import (
	"strings"
)

// NewSaveProvider picks an implementation based on the form of the source
//
// http(s) URLs are fetched with the given client, anything else is treated as a file path.
func NewSaveProvider(source string, httpClient HttpClient) SaveProvider {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSaveProvider(httpClient, source)
	}

	return NewFileSaveProvider(strings.TrimPrefix(source, "file://"))
}
