// CLAUDE:SUMMARY MCP tool registration exposing record generation, region resolution and id decoding over stdio.
package api

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fixturelab/shenfen/pkg/kit"
	"github.com/fixturelab/shenfen/pkg/person"
)

// RegisterMCPTools registers the four shenfen MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, gen *person.Generator) {
	registerGeneratePerson(srv, gen)
	registerResolveRegion(srv, gen)
	registerDecodeID(srv, gen)
	registerVerifyID(srv)
}

func registerGeneratePerson(srv *server.MCPServer, gen *person.Generator) {
	tool := mcp.NewTool("generate_person",
		mcp.WithDescription("Generate synthetic Chinese identity records (checksum-valid id number, name, birth date, region, contact fields)."),
		mcp.WithNumber("count", mcp.Description("Number of records to generate (default 1, max 1000)")),
		mcp.WithString("region", mcp.Description("Region name (e.g. 北京, 海淀区) or explicit 6-digit code")),
		mcp.WithNumber("age", mcp.Description("Target age in years (0-120)")),
		mcp.WithString("birth_date", mcp.Description("Exact birth date, YYYYMMDD")),
		mcp.WithNumber("gender", mcp.Description("0 = female, 1 = male (default random)")),
	)

	kit.RegisterMCPTool(srv, tool, generateEndpoint(gen), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		r := &generateReq{}
		if v, ok := args["count"].(float64); ok {
			r.Count = int(v)
		}
		if v, _ := args["region"].(string); v != "" {
			if len(v) == 6 && isASCIIDigits(v) {
				r.Opts.RegionCode = v
			} else {
				r.Opts.RegionName = v
			}
		}
		if v, ok := args["age"].(float64); ok {
			age := int(v)
			r.Opts.Age = &age
		}
		if v, _ := args["birth_date"].(string); v != "" {
			r.Opts.BirthDate = v
		}
		if v, ok := args["gender"].(float64); ok {
			gender := int(v)
			r.Opts.Gender = &gender
		}
		return &kit.MCPDecodeResult{Request: r}, nil
	})
}

func registerResolveRegion(srv *server.MCPServer, gen *person.Generator) {
	tool := mcp.NewTool("resolve_region",
		mcp.WithDescription("Resolve a free-text region name to its canonical administrative code (exact, alias and fuzzy matching)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Region name to resolve")),
	)

	kit.RegisterMCPTool(srv, tool, resolveRegionEndpoint(gen), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		name, _ := args["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("name is required")
		}
		return &kit.MCPDecodeResult{Request: &resolveReq{Name: name}}, nil
	})
}

func registerDecodeID(srv *server.MCPServer, gen *person.Generator) {
	tool := mcp.NewTool("decode_id",
		mcp.WithDescription("Decode an 18-character identity number into region, birth date, age and gender."),
		mcp.WithString("number", mcp.Required(), mcp.Description("The 18-character identity number")),
	)

	kit.RegisterMCPTool(srv, tool, decodeEndpoint(gen), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		number, _ := args["number"].(string)
		if number == "" {
			return nil, fmt.Errorf("number is required")
		}
		return &kit.MCPDecodeResult{Request: &decodeReq{Number: number}}, nil
	})
}

func registerVerifyID(srv *server.MCPServer) {
	tool := mcp.NewTool("verify_id",
		mcp.WithDescription("Verify the checksum of an 18-character identity number."),
		mcp.WithString("number", mcp.Required(), mcp.Description("The 18-character identity number")),
	)

	kit.RegisterMCPTool(srv, tool, verifyEndpoint(), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		number, _ := args["number"].(string)
		if number == "" {
			return nil, fmt.Errorf("number is required")
		}
		return &kit.MCPDecodeResult{Request: &verifyReq{Number: number}}, nil
	})
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
