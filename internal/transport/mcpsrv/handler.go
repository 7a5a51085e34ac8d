package mcpsrv

import (
	"context"
	"encoding/json"
	"log/slog"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"csvexport/internal/exporter"
)

// Validation messages for the two rejected request shapes
const (
	errNotArray   = "Data must be provided as an array of objects"
	errEmptyArray = "Data array cannot be empty"
)

// exportArgs is the csv_export argument payload. Records stays raw so
// the ordered Record decoder sees the original JSON.
type exportArgs struct {
	Records        json.RawMessage `json:"records"`
	Filename       string          `json:"filename"`
	Description    string          `json:"description"`
	Delimiter      string          `json:"delimiter"`
	IncludeHeaders *bool           `json:"includeHeaders"`
}

// exportDescriptor is the success payload handed back to the client.
// Only the relative export filename is exposed, never the full path.
type exportDescriptor struct {
	Path     string `json:"path"`
	Filetype string `json:"filetype"`
	Filename string `json:"filename"`
	Filesize string `json:"filesize"`
}

// errorEnvelope is the soft-error payload
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleCSVExport services one csv_export invocation. Bad input and
// write failures come back as error-flagged tool results; the handler
// itself never fails, so the transport keeps running.
func (s *Server) handleCSVExport(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var raw json.RawMessage
	switch args := req.Params.Arguments.(type) {
	case json.RawMessage:
		raw = args
	case nil:
	default:
		// some transports deliver pre-decoded arguments
		b, err := json.Marshal(args)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		raw = b
	}

	result, err := s.export(ctx, raw)
	if err != nil {
		s.logger.Error("Error processing CSV export", slog.String("error", err.Error()))
		return errorResult(err.Error()), nil
	}
	return successResult(result), nil
}

// export runs validation, encoding and the file write for one request
func (s *Server) export(ctx context.Context, raw json.RawMessage) (*exportDescriptor, error) {
	args := exportArgs{
		Filename:  exporter.DefaultBaseName,
		Delimiter: ",",
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, invalidInput(errNotArray)
		}
	}

	records, err := decodeRecords(args.Records)
	if err != nil {
		return nil, err
	}

	includeHeaders := true
	if args.IncludeHeaders != nil {
		includeHeaders = *args.IncludeHeaders
	}

	content := exporter.Encode(records, delimiterRune(args.Delimiter), includeHeaders)
	filename := exporter.UniqueFilename(args.Filename)
	sizeLabel := exporter.SizeLabel(content)

	fullPath, err := s.writer.Write(content, filename)
	if err != nil {
		return nil, err
	}

	columns := 0
	if len(records) > 0 {
		columns = records[0].Len()
	}
	s.logger.InfoContext(ctx, "CSV generated",
		slog.String("filename", filename),
		slog.String("size", sizeLabel),
		slog.Int("rows", len(records)),
		slog.Int("columns", columns),
		slog.String("saved_to", fullPath))

	return &exportDescriptor{
		Path:     filename,
		Filetype: "text/csv",
		Filename: filename,
		Filesize: sizeLabel,
	}, nil
}

// decodeRecords enforces the two request preconditions: records must be
// a JSON array of objects and must not be empty. Per-field shape inside
// each object is not validated.
func decodeRecords(raw json.RawMessage) ([]exporter.Record, error) {
	var records []exporter.Record
	if len(raw) == 0 {
		return nil, invalidInput(errNotArray)
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, invalidInput(errNotArray)
	}
	if records == nil {
		// a JSON null unmarshals without error
		return nil, invalidInput(errNotArray)
	}
	if len(records) == 0 {
		return nil, invalidInput(errEmptyArray)
	}
	return records, nil
}

// delimiterRune picks the effective delimiter: the first rune of the
// supplied string, falling back to the default comma.
func delimiterRune(s string) rune {
	if s == "" {
		return exporter.DefaultDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func successResult(d *exportDescriptor) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(d, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(errorEnvelope{Success: false, Error: msg}, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
		IsError: true,
	}
}

// inputError distinguishes request-validation failures from I/O errors
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return e.msg
}

func invalidInput(msg string) error {
	return &inputError{msg: msg}
}
