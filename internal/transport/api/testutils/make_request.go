package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	body    io.Reader
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру в обход сети и возвращает ответ рекордера.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions) error) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		body:    args.Body,
	}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}
	}

	request := httptest.NewRequest(args.Method, args.URL, options.body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) error {
	return func(o *RequestOptions) error {
		o.headers[name] = value
		return nil
	}
}

// WithBearer пустой токен игнорируется, так удобнее описывать неавторизованные кейсы в таблицах.
func WithBearer(token string) func(*RequestOptions) error {
	return func(o *RequestOptions) error {
		if token != "" {
			o.headers["Authorization"] = "Bearer " + token
		}
		return nil
	}
}

// WithJSON сериализует v в тело запроса и выставляет Content-Type.
func WithJSON(v any) func(*RequestOptions) error {
	return func(o *RequestOptions) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal json body: %w", err)
		}
		o.body = bytes.NewReader(b)
		o.headers["Content-Type"] = "application/json"
		return nil
	}
}

// DecodeJSON читает и закрывает тело ответа.
func DecodeJSON(res *http.Response, v any) error {
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
