package tradebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DecodeQuotes decodes a JSON quote document.
func DecodeQuotes(r io.Reader) (any, error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode quotes: %w", err)
	}
	return doc, nil
}

// LoadQuotes reads a JSON quote document from a local file or, if src is an
// http(s) address, from the network.
func LoadQuotes(client *http.Client, src string) (any, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		var doc any
		if err := jwget(client, src, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeQuotes(f)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
