package discord

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// FastHTTPInterface routes requests to discord through a fasthttp client.
// Like BaseInterface, it does not handle rate limiting.
type FastHTTPInterface struct {
	HTTP       *fasthttp.Client
	Logger     zerolog.Logger
	Timeout    time.Duration
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string

	Debug bool
}

func NewFastHTTPInterface() RESTInterface {
	return NewFastHTTPInterfaceWithClient(&fasthttp.Client{
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}, EndpointDiscord, APIVersion, UserAgent)
}

func NewFastHTTPInterfaceWithClient(client *fasthttp.Client, endpoint string, version string, useragent string) RESTInterface {
	url, _ := url.Parse(endpoint)

	return &FastHTTPInterface{
		HTTP:       client,
		Logger:     zerolog.New(os.Stderr).With().Timestamp().Logger(),
		Timeout:    20 * time.Second,
		APIVersion: version,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  useragent,
	}
}

func (fi *FastHTTPInterface) Fetch(session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var rawQuery string

	if strings.Contains(endpoint, "?") {
		parts := strings.SplitN(endpoint, "?", 2)
		endpoint, rawQuery = parts[0], parts[1]
	}

	requestURI := fasthttp.AcquireURI()
	defer fasthttp.ReleaseURI(requestURI)

	requestURI.SetScheme(fi.URLScheme)
	requestURI.SetHost(fi.URLHost)
	requestURI.SetQueryString(rawQuery)

	if fi.APIVersion != "" && !strings.HasPrefix(endpoint, "/api") {
		requestURI.SetPath("/api/" + fi.APIVersion + endpoint)
	} else {
		requestURI.SetPath(endpoint)
	}

	req.SetURI(requestURI)
	req.Header.SetMethod(method)
	req.SetBody(body)

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.ContentType()) == 0 {
		req.Header.SetContentType(contentType)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	req.Header.SetUserAgent(fi.UserAgent)
	req.Header.Set("Accept", "application/json")

	err := fi.HTTP.DoTimeout(req, resp, fi.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	response := make([]byte, len(resp.Body()))
	copy(response, resp.Body())

	if fi.Debug {
		fi.Logger.Debug().
			Str("method", method).
			Str("url", requestURI.String()).
			Int("status", resp.StatusCode()).
			Bytes("body", body).
			Bytes("response", response).
			Msg("Fetched endpoint")
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusCreated:
	case http.StatusNoContent:
	case http.StatusUnauthorized:
		return response, ErrUnauthorized
	default:
		httpReq, _ := http.NewRequestWithContext(session.Context, method, requestURI.String(), nil)

		return response, NewRestError(httpReq, &http.Response{
			StatusCode: resp.StatusCode(),
			Status:     http.StatusText(resp.StatusCode()),
		}, response)
	}

	return response, nil
}

func (fi *FastHTTPInterface) FetchBJ(session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := fi.Fetch(session, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil {
		err = jsonConfig.Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (fi *FastHTTPInterface) FetchJJ(session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte
	var err error

	if payload != nil {
		body, err = jsonConfig.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	} else {
		body = make([]byte, 0)
	}

	return fi.FetchBJ(session, method, endpoint, "application/json", body, headers, response)
}

func (fi *FastHTTPInterface) SetDebug(value bool) {
	fi.Debug = value
}
