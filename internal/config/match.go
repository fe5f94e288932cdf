package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MatchFile is the optional HCL description of a console match:
//
//	player_one = "John"
//	player_two = "Jack"
//	seed       = 42
type MatchFile struct {
	PlayerOne string `hcl:"player_one,optional"`
	PlayerTwo string `hcl:"player_two,optional"`
	Seed      *int64 `hcl:"seed,optional"`
}

func LoadMatchFile(filePath string) (MatchFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return MatchFile{}, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}
	return decodeMatch(filePath, hclFile.Body)
}

func ParseMatch(src []byte, filename string) (MatchFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return MatchFile{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeMatch(filename, hclFile.Body)
}

func decodeMatch(filename string, body hcl.Body) (MatchFile, error) {
	var match MatchFile
	if diags := gohcl.DecodeBody(body, nil, &match); diags.HasErrors() {
		return MatchFile{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return match, nil
}
