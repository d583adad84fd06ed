package api

import (
	"context"
	"fmt"

	"github.com/fixturelab/shenfen/pkg/idnum"
	"github.com/fixturelab/shenfen/pkg/kit"
	"github.com/fixturelab/shenfen/pkg/person"
)

// Shared request/response types used by the CLI and MCP transports.

type generateReq struct {
	Count int
	Opts  person.Options
}

type generateResponse struct {
	Records []*person.Record `json:"records"`
}

type resolveReq struct {
	Name string
}

type resolveResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
	// Display is the fully-qualified name recorded for the code.
	Display string `json:"display"`
}

type decodeReq struct {
	Number string
}

type decodeResponse struct {
	*idnum.Info
	BirthDate string `json:"birth_date"`
	Region    string `json:"region,omitempty"`
	Valid     bool   `json:"checksum_valid"`
}

type verifyReq struct {
	Number string
}

type verifyResponse struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

func generateEndpoint(gen *person.Generator) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*generateReq)
		count := req.Count
		if count == 0 {
			count = 1
		}
		if count > 1000 {
			return nil, fmt.Errorf("too many records (max 1000, got %d)", count)
		}
		records, err := gen.GenerateBatch(count, req.Opts, nil)
		if err != nil {
			return nil, err
		}
		return generateResponse{Records: records}, nil
	}
}

func resolveRegionEndpoint(gen *person.Generator) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*resolveReq)
		code, err := gen.Resolver().CodeForName(req.Name)
		if err != nil {
			return nil, err
		}
		return resolveResponse{
			Name:    req.Name,
			Code:    code,
			Display: gen.Resolver().NameForCode(code),
		}, nil
	}
}

func decodeEndpoint(gen *person.Generator) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*decodeReq)
		info, err := idnum.Decode(req.Number)
		if err != nil {
			return nil, err
		}
		return decodeResponse{
			Info:      info,
			BirthDate: info.BirthDateISO(),
			Region:    gen.Resolver().NameForCode(info.RegionCode),
			Valid:     idnum.VerifyChecksum(req.Number),
		}, nil
	}
}

func verifyEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*verifyReq)
		return verifyResponse{Number: req.Number, Valid: idnum.VerifyChecksum(req.Number)}, nil
	}
}
