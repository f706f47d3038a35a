package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

var httpClient = &http.Client{}

// HTTPClient returns the shared HTTP client
func HTTPClient() *http.Client {
	return httpClient
}

// ReqByObjJSON makes an HTTP request with a JSON-marshaled input object as
// its body, unmarshaling the response into output when output is non-nil.
// The raw response body is always returned.
func ReqByObjJSON(method, url, auth string, input, output interface{}) ([]byte, error) {
	requestBody, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if auth != "" {
		request.Header.Set("Authorization", auth)
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, _ := ioutil.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return responseBody, HTTPErr{
			Status:  response.StatusCode,
			Message: fmt.Sprintf("Request to %v failed: %v", url, response.Status),
		}
	}

	if output != nil {
		err = json.Unmarshal(responseBody, output)
	}
	return responseBody, err
}
