package kit

import (
	"context"
	"testing"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(label string) Middleware {
		return func(next Endpoint) Endpoint {
			return func(ctx context.Context, req any) (any, error) {
				order = append(order, label)
				return next(ctx, req)
			}
		}
	}

	ep := Chain(mw("a"), mw("b"), mw("c"))(func(ctx context.Context, req any) (any, error) {
		order = append(order, "endpoint")
		return req, nil
	})

	resp, err := ep(context.Background(), "payload")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	if resp != "payload" {
		t.Errorf("resp = %v, want payload", resp)
	}

	want := []string{"a", "b", "c", "endpoint"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTransportContext(t *testing.T) {
	ctx := context.Background()
	if got := GetTransport(ctx); got != "cli" {
		t.Errorf("default transport = %q, want cli", got)
	}
	ctx = WithTransport(ctx, "mcp_stdio")
	if got := GetTransport(ctx); got != "mcp_stdio" {
		t.Errorf("transport = %q, want mcp_stdio", got)
	}

	if got := GetRequestID(ctx); got != "" {
		t.Errorf("default request id = %q, want empty", got)
	}
	ctx = WithRequestID(ctx, "req-1")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("request id = %q, want req-1", got)
	}
}
