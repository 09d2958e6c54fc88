package lambda

import (
	"fmt"
	"strings"
)

// ProxySource names the kind of event the Lambda function is invoked
// with, and so the adapter translating it into an http.Request.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 is an API Gateway REST API proxy event.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 is an API Gateway HTTP API (payload 2.0) event.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb is an Application Load Balancer target event.
	ProxySourceAlb ProxySource = "ALB"
)

// ProxySources lists the supported proxy sources.
var ProxySources = []ProxySource{
	ProxySourceApiGatewayV1,
	ProxySourceApiGatewayV2,
	ProxySourceAlb,
}

func (p ProxySource) String() string {
	return string(p)
}

// ParseProxySource parses s case-insensitively. The empty string yields
// ProxySourceApiGatewayV1.
func ParseProxySource(s string) (ProxySource, error) {
	if s == "" {
		return ProxySourceApiGatewayV1, nil
	}

	for _, source := range ProxySources {
		if strings.EqualFold(s, string(source)) {
			return source, nil
		}
	}

	return "", fmt.Errorf("invalid proxy source: %s", s)
}

type Config struct {
	// ProxySource is the kind of event the function receives.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}

// Normalize validates the proxy source and replaces it by its canonical
// spelling.
func (c Config) Normalize() (Config, error) {
	source, err := ParseProxySource(string(c.ProxySource))
	if err != nil {
		return c, err
	}

	c.ProxySource = source

	return c, nil
}
