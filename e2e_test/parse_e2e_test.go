//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manoskary/partitura/cmd"
	"github.com/manoskary/partitura/model"
	"github.com/stretchr/testify/assert"
)

func createParseReqBody(lines []string) io.Reader {
	pr := model.ParseRequestBody{Lines: lines}
	data, err := json.Marshal(pr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestParseEndpointE2E(t *testing.T) {
	lines := []string{
		"snote(1-1,[E,n],4,0:1,0,1/4,-1.0,0.0,[staff1])-note(0,[E,n],4,471720,472397,472397,49).",
		"info(matchFileVersion,4.0).",
		"foo(1,2).",
	}
	req := httptest.NewRequest(http.MethodPost, "/parse", createParseReqBody(lines))
	w := httptest.NewRecorder()
	cmd.HandleParse(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var parseResponse model.ParseResponse
	err := json.Unmarshal(respBody, &parseResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(3, parseResponse.NumLines)
	assert.Equal(1, parseResponse.NumUnmatched)
	assert.Equal("snote-note", parseResponse.Lines[0].Kind)
	assert.Equal(lines[0], parseResponse.Lines[0].Canonical)
	assert.Equal("info", parseResponse.Lines[1].Kind)
	assert.Equal("unmatched", parseResponse.Lines[2].Kind)
	assert.NotEmpty(parseResponse.Lines[2].Error)
}

func TestParseEndpointRejectsBadBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	cmd.HandleParse(w, req)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.NotEmpty(errResponse.Error)
}
