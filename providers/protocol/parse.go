package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/leofalp/aisdkstream/core/chunk"
)

const maxLineSize = 1 * 1024 * 1024

// V5Parser reads "data: <json>\n\n" frames back into chunks, adapting the
// teacher's SSEScanner line-buffering idiom. It stops at the terminal
// "data: [DONE]" sentinel, returning io.EOF.
type V5Parser struct {
	scanner *bufio.Scanner
}

func NewV5Parser(r io.Reader) *V5Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &V5Parser{scanner: scanner}
}

// Next returns the next chunk, or io.EOF once the [DONE] sentinel or end of
// input is reached.
func (p *V5Parser) Next() (chunk.Chunk, error) {
	for p.scanner.Scan() {
		line := p.scanner.Text()
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return chunk.Chunk{}, io.EOF
		}

		var c chunk.Chunk
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			return chunk.Chunk{}, fmt.Errorf("protocol: v5 parse: %w", err)
		}
		return c, nil
	}
	if err := p.scanner.Err(); err != nil {
		return chunk.Chunk{}, fmt.Errorf("protocol: v5 scan: %w", err)
	}
	return chunk.Chunk{}, io.EOF
}

// V4Parser reads "<prefix>:<json>\n" lines back into the renderable subset
// of chunks. Since several kinds produce no v4 line at all, a v4 round trip
// reconstructs only what V4.Render emitted, not the full original sequence.
type V4Parser struct {
	scanner *bufio.Scanner
}

func NewV4Parser(r io.Reader) *V4Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &V4Parser{scanner: scanner}
}

// Next returns the next chunk decoded from a v4 line, or io.EOF at end of
// input.
func (p *V4Parser) Next() (chunk.Chunk, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return chunk.Chunk{}, fmt.Errorf("protocol: v4 scan: %w", err)
		}
		return chunk.Chunk{}, io.EOF
	}

	line := p.scanner.Text()
	prefix, payload, found := strings.Cut(line, ":")
	if !found {
		return chunk.Chunk{}, fmt.Errorf("protocol: v4 parse: malformed line %q", line)
	}

	switch prefix {
	case "0":
		var delta string
		if err := json.Unmarshal([]byte(payload), &delta); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindTextDelta, Delta: delta}, nil

	case "2":
		var wrapped []any
		if err := json.Unmarshal([]byte(payload), &wrapped); err != nil {
			return chunk.Chunk{}, err
		}
		var data any
		if len(wrapped) > 0 {
			data = wrapped[0]
		}
		return chunk.Chunk{Kind: chunk.KindData, Data: data}, nil

	case "3":
		var errorText string
		if err := json.Unmarshal([]byte(payload), &errorText); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindError, ErrorText: errorText}, nil

	case "8":
		var wrapped []any
		if err := json.Unmarshal([]byte(payload), &wrapped); err != nil {
			return chunk.Chunk{}, err
		}
		var data any
		if len(wrapped) > 0 {
			data = wrapped[0]
		}
		return chunk.Chunk{Kind: chunk.KindAnnotation, Data: data}, nil

	case "9":
		var body struct {
			ToolCallID string `json:"toolCallId"`
			ToolName   string `json:"toolName"`
			Args       any    `json:"args"`
		}
		if err := json.Unmarshal([]byte(payload), &body); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindToolInputAvailable, ToolCallID: body.ToolCallID, ToolName: body.ToolName, Input: body.Args}, nil

	case "a":
		var body struct {
			ToolCallID string `json:"toolCallId"`
			Result     any    `json:"result"`
		}
		if err := json.Unmarshal([]byte(payload), &body); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindToolOutputAvailable, ToolCallID: body.ToolCallID, Output: body.Result}, nil

	case "b":
		var body struct {
			ToolCallID string `json:"toolCallId"`
			ToolName   string `json:"toolName"`
		}
		if err := json.Unmarshal([]byte(payload), &body); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindToolInputStart, ToolCallID: body.ToolCallID, ToolName: body.ToolName}, nil

	case "d", "e":
		var body struct {
			FinishReason string      `json:"finishReason"`
			Usage        chunk.Usage `json:"usage"`
		}
		if err := json.Unmarshal([]byte(payload), &body); err != nil {
			return chunk.Chunk{}, err
		}
		kind := chunk.KindFinish
		if prefix == "e" {
			kind = chunk.KindFinishStep
		}
		return chunk.Chunk{Kind: kind, FinishReason: body.FinishReason, Usage: &body.Usage}, nil

	case "f":
		var body struct {
			MessageID string `json:"messageId"`
		}
		if err := json.Unmarshal([]byte(payload), &body); err != nil {
			return chunk.Chunk{}, err
		}
		return chunk.Chunk{Kind: chunk.KindStartStep}, nil

	default:
		return chunk.Chunk{}, fmt.Errorf("protocol: v4 parse: unknown prefix %q", prefix)
	}
}
