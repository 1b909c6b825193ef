package emit

import (
	"fmt"

	"github.com/leofalp/aisdkstream/core/chunk"
)

// Channel is a thin wrapper around the engine's output queue. Every method
// constructs the corresponding chunk and pushes it, under the same FIFO
// discipline the engine itself uses.
type Channel struct {
	out chan<- chunk.Chunk
}

// NewChannel wraps out, the engine's output queue, for manual emission.
func NewChannel(out chan<- chunk.Chunk) *Channel {
	return &Channel{out: out}
}

// closedChannelRecover turns a send-on-closed-channel panic into an error,
// so a caller that emits after the stream has already closed gets a
// reportable failure instead of crashing the process.
func closedChannelRecover(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("emit: channel closed: %v", r)
	}
}

func (c *Channel) push(ck chunk.Chunk) (err error) {
	defer closedChannelRecover(&err)
	c.out <- ck
	return nil
}

func (c *Channel) EmitStart(messageID string) error {
	return c.push(chunk.Start(messageID))
}

func (c *Channel) EmitStartStep() error {
	return c.push(chunk.StartStep())
}

func (c *Channel) EmitTextStart(id string) error {
	return c.push(chunk.TextStart(id))
}

func (c *Channel) EmitTextDelta(id, delta string) error {
	return c.push(chunk.TextDelta(id, delta))
}

func (c *Channel) EmitTextEnd(id string) error {
	return c.push(chunk.TextEnd(id))
}

func (c *Channel) EmitToolInputStart(toolCallID, toolName string) error {
	return c.push(chunk.ToolInputStart(toolCallID, toolName))
}

func (c *Channel) EmitToolInputDelta(toolCallID, inputTextDelta string) error {
	return c.push(chunk.ToolInputDelta(toolCallID, inputTextDelta))
}

func (c *Channel) EmitToolInputAvailable(toolCallID, toolName string, input any) error {
	return c.push(chunk.ToolInputAvailable(toolCallID, toolName, input))
}

func (c *Channel) EmitToolOutputAvailable(toolCallID string, output any) error {
	return c.push(chunk.ToolOutputAvailable(toolCallID, output))
}

func (c *Channel) EmitData(data any) error {
	return c.push(chunk.Data(data))
}

func (c *Channel) EmitFile(mediaType, url string) error {
	return c.push(chunk.File(mediaType, url))
}

func (c *Channel) EmitAnnotation(data any) error {
	return c.push(chunk.Annotation(data))
}

func (c *Channel) EmitError(errorText string) error {
	return c.push(chunk.Error(errorText))
}

func (c *Channel) EmitFinish(finishReason string, usage *chunk.Usage) error {
	return c.push(chunk.Finish(finishReason, usage))
}
