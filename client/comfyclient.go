// Package client is a slim client for a running ComfyUI backend.
// Prompt extraction itself is offline; the client exists so prompts can
// also be pulled from a server's execution history or watched live as
// generations finish. It also carries the PNG metadata reader used for
// offline extraction.
package client

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// ComfyClient is the top level object that allows for interaction with
// the ComfyUI backend
type ComfyClient struct {
	serverBaseAddress string
	serverAddress     string
	serverPort        int
	clientid          string
	httpclient        *http.Client
}

// NewComfyClient creates a new instance of a ComfyClient
func NewComfyClient(serverAddress string, serverPort int) *ComfyClient {
	sbaseaddr := serverAddress + ":" + strconv.Itoa(serverPort)
	return &ComfyClient{
		serverBaseAddress: sbaseaddr,
		serverAddress:     serverAddress,
		serverPort:        serverPort,
		clientid:          uuid.New().String(),
		httpclient:        &http.Client{},
	}
}

// ClientID returns the unique client ID for the connection to the ComfyUI backend
func (c *ComfyClient) ClientID() string {
	return c.clientid
}

// ServerBaseAddress returns the host:port the client talks to
func (c *ComfyClient) ServerBaseAddress() string {
	return c.serverBaseAddress
}

// HttpClient returns the underlying http client
func (c *ComfyClient) HttpClient() *http.Client {
	return c.httpclient
}

// SetHttpClient sets the underlying http client
func (c *ComfyClient) SetHttpClient(client *http.Client) {
	c.httpclient = client
}
