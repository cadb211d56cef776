package clientapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Tempos de espera do app: leituras e gravações usam 10s,
// remoção usa um limite próprio, mais curto.
const (
	DefaultTimeout       = 10 * time.Second
	DefaultDeleteTimeout = 8 * time.Second
)

// Cliente é o registro como a API devolve.
type Cliente struct {
	ID    uint   `json:"id"`
	Nome  string `json:"Nome"`
	Idade int    `json:"Idade"`
	UF    string `json:"UF"`
}

// ClientePayload é o corpo de criação/atualização, já validado
// e normalizado pelo formulário.
type ClientePayload struct {
	Nome  string `json:"Nome"`
	Idade int    `json:"Idade"`
	UF    string `json:"UF"`
}

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	DeleteTimeout time.Duration
}

type Client struct {
	http          *http.Client
	baseURL       string
	timeout       time.Duration
	deleteTimeout time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	deleteTimeout := cfg.DeleteTimeout
	if deleteTimeout <= 0 {
		deleteTimeout = DefaultDeleteTimeout
	}

	return &Client{
		http:          &http.Client{},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		timeout:       timeout,
		deleteTimeout: deleteTimeout,
	}
}

// ======================================================
// OPERAÇÕES
// ======================================================

func (c *Client) List(ctx context.Context) ([]Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var clientes []Cliente
	if err := c.do(ctx, http.MethodGet, "/", nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *Client) Get(ctx context.Context, id uint) (*Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var cliente Cliente
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil, &cliente); err != nil {
		return nil, mapNotFound(err)
	}
	return &cliente, nil
}

func (c *Client) Create(ctx context.Context, payload ClientePayload) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.do(ctx, http.MethodPost, "/clientes", &payload, nil)
}

func (c *Client) Update(ctx context.Context, id uint, payload ClientePayload) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d", id), &payload, nil)
}

// Delete tem política de cancelamento independente (mais curta).
func (c *Client) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, c.deleteTimeout)
	defer cancel()

	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil, nil)
	return mapNotFound(err)
}

// ======================================================
// TRANSPORTE
// ======================================================

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("resposta inválida do servidor: %w", err)
		}
	}

	return nil
}

func readErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}

func mapNotFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return ErrClienteNaoEncontrado
	}
	return err
}
