package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) registerHTTPSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I send a "(GET|POST|PATCH|DELETE)" request to "([^"]*)"$`, t.iSendARequestTo)
	sc.Step(`^I send a "(GET|POST|PATCH|DELETE)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	sc.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	sc.Step(`^the response field "([^"]*)" should not exist$`, t.theResponseFieldShouldNotExist)
	sc.Step(`^the response list "([^"]*)" should have (\d+) items?$`, t.theResponseListShouldHaveItems)
	sc.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, t.iStoreTheResponseFieldAs)
}

// substitute replaces {name} placeholders with values captured by the
// "I store the response field" step.
func (t *testContext) substitute(s string) string {
	for name, value := range t.stored {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (t *testContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, t.server.URL+t.substitute(path), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = resp
	t.responseBody = data
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.doRequest(method, path, bytes.NewBufferString(t.substitute(body.Content)))
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.StatusCode, t.responseBody)
	}
	return nil
}

// lookupField walks a dot-separated path through the decoded response body.
// Numeric segments index into arrays.
func (t *testContext) lookupField(path string) (interface{}, error) {
	if len(t.responseBody) == 0 {
		return nil, fmt.Errorf("response body is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(t.responseBody))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in path %q", segment, path)
			}
			current = value
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("expected array index at %q in path %q", segment, path)
			}
			if idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index %d out of range at path %q (len %d)", idx, path, len(node))
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into %q at path %q", segment, path)
		}
	}
	return current, nil
}

func formatFieldValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case json.Number:
		return v.String()
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return fmt.Errorf("%w (body: %s)", err, t.responseBody)
	}
	actual := formatFieldValue(value)
	if actual != t.substitute(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q (body: %s)", path, t.substitute(expected), actual, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	if _, err := t.lookupField(path); err != nil {
		return fmt.Errorf("%w (body: %s)", err, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(path string) error {
	if _, err := t.lookupField(path); err == nil {
		return fmt.Errorf("expected field %q to be absent (body: %s)", path, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := t.lookupField(path)
	if err != nil {
		return fmt.Errorf("%w (body: %s)", err, t.responseBody)
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not a list (body: %s)", path, t.responseBody)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items at %q, got %d (body: %s)", count, path, len(list), t.responseBody)
	}
	return nil
}

func (t *testContext) iStoreTheResponseFieldAs(path, name string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return fmt.Errorf("%w (body: %s)", err, t.responseBody)
	}
	t.stored[name] = formatFieldValue(value)
	return nil
}
