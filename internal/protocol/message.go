// Package protocol implements the command/message boundary between the
// editing surface and the execution host.
//
// Messages flow one way, surface to host, with no structured acknowledgment
// for mutating commands: the surface learns about success or failure only
// through the user-facing notification channel. The host answers exactly
// one message type (load-frames) with an event.
package protocol

import (
	"fmt"

	"github.com/aretw0/motif/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// MessageType discriminates protocol messages.
type MessageType string

// Surface -> host commands.
const (
	MsgLoadFrames     MessageType = "load-frames"
	MsgCreateGroup    MessageType = "create-animation-group"
	MsgUpdateKeyframe MessageType = "update-keyframe"
	MsgPreview        MessageType = "preview-animation"
	MsgPlay           MessageType = "play-animation"
	MsgStop           MessageType = "stop-animation"
	MsgExport         MessageType = "export-animation"
)

// Host -> surface events.
const (
	MsgFramesLoaded MessageType = "frames-loaded"
	MsgNotification MessageType = "notification"
)

// Envelope is a raw protocol message: a type discriminator plus the
// message's own fields, exactly as decoded from JSON.
type Envelope map[string]any

// Type extracts the message type discriminator.
func (e Envelope) Type() MessageType {
	t, _ := e["type"].(string)
	return MessageType(t)
}

// CreateGroupCommand carries a new animation group.
type CreateGroupCommand struct {
	AnimationGroup domain.AnimationGroup `mapstructure:"animationGroup"`
}

// UpdateKeyframeCommand carries a keyframe property edit. The group is
// referenced for resolution; only the keyframe's properties are applied.
type UpdateKeyframeCommand struct {
	AnimationGroup domain.AnimationGroup `mapstructure:"animationGroup"`
	Keyframe       domain.Keyframe       `mapstructure:"keyframe"`
}

// PreviewCommand scrubs the preview playhead to a point in time.
type PreviewCommand struct {
	PreviewTime float64 `mapstructure:"previewTime"`
}

// PlayCommand starts bounded playback. A zero duration plays to the end of
// the longest group timeline.
type PlayCommand struct {
	Duration float64 `mapstructure:"duration"`
}

// FramesLoadedEvent is the reply to load-frames.
type FramesLoadedEvent struct {
	Type   MessageType    `json:"type"`
	Frames []domain.Frame `json:"frames"`
}

// decode maps the envelope's fields onto a typed command.
func decode(env Envelope, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build message decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(env)); err != nil {
		return fmt.Errorf("malformed %s message: %w", env.Type(), err)
	}
	return nil
}
