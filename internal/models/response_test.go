package models

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	testCode := http.StatusCreated
	testData := map[string]string{"key": "value"}
	testText := "Resource Created"

	currentTimeBeforeCall := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(testCode, testData, testText)
	currentTimeAfterCall := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, testCode, response.Code, "Response code should match input")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, testText, response.Text, "Response text should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.GreaterOrEqual(t, response.CurrentTime, currentTimeBeforeCall, "Response current time should be after or equal to time before call")
	assert.LessOrEqual(t, response.CurrentTime, currentTimeAfterCall, "Response current time should be before or equal to time after call")
}

func TestNewEntryResponse(t *testing.T) {
	entryData := map[string]string{"url": "https://example.com"}

	response := NewEntryResponse(entryData)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.InDelta(t, time.Now().UnixNano()/int64(time.Millisecond), response.CurrentTime, 100)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, entryData, responseData["entry"], "Entry in response data should match input entry")
}

func TestNewOKResponse(t *testing.T) {
	testData := map[string]string{"status": "all good"}

	response := NewOKResponse(testData)

	assert.Equal(t, http.StatusOK, response.Code, "Response code should be StatusOK")
	assert.Equal(t, "OK", response.Text, "Response text should be 'OK'")
	assert.Equal(t, testData, response.Data, "Response data should match input")
}

func TestNewListResponse(t *testing.T) {
	itemList := []string{"item1", "item2"}

	response := NewListResponse(itemList)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, itemList, responseData["list"], "List in response data should match input list")
	assert.False(t, responseData["limitExceeded"].(bool), "limitExceeded should be false")
}
