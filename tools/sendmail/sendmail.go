// Package sendmail provides a tool that delivers an HTML email through
// a pluggable notification provider.
package sendmail

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/schema"
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools"
	"github.com/go-playground/validator/v10"
)

const ToolName = "SendMail"

// MailRequest represents the tool input.
type MailRequest struct {
	Recipient string `json:"recipient" yaml:"recipient" jsonschema:"title=Recipient,description=The email address of the recipient." validate:"required,email"`
	Subject   string `json:"subject" yaml:"subject" jsonschema:"title=Subject,description=The subject of the email." validate:"required"`
	Text      string `json:"text" yaml:"text" jsonschema:"title=Text,description=The HTML body of the email." validate:"required"`
}

// MailResult holds the provider's synchronous acknowledgment.
type MailResult struct {
	Confirmation string `json:"confirmation" yaml:"confirmation"`
}

// Sender is the opaque notification provider: a single call that either
// succeeds or returns a provider-level fault. There is no retry and no
// delivery confirmation beyond the synchronous acknowledgment.
type Sender interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// Tool validates the request and delegates delivery to the provider.
type Tool struct {
	name        string
	description string
	funcParams  any

	sender   Sender
	validate *validator.Validate
}

var _ tools.Tool[MailRequest, MailResult] = (*Tool)(nil)

func New(sender Sender) (*Tool, error) {
	if sender == nil {
		return nil, errors.New("sender is required")
	}
	sc, err := schema.New(reflect.TypeOf(MailRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "A tool that sends an HTML email to the given recipient.",
		funcParams:  sc.Parameters,
		sender:      sender,
		validate:    validator.New(),
	}
	return t, nil
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *MailRequest) (*MailResult, error) {
	if err := t.validate.Struct(req); err != nil {
		return nil, tools.WrapError(tools.KindInvalidInput, err, "invalid request")
	}

	if err := t.sender.Send(ctx, req.Recipient, req.Subject, req.Text); err != nil {
		var terr *tools.Error
		if errors.As(err, &terr) {
			return nil, err
		}
		return nil, tools.WrapError(tools.KindDeliveryFailure, err, "failed to send email")
	}

	return &MailResult{
		Confirmation: fmt.Sprintf("Email sent to %s with subject %q", req.Recipient, req.Subject),
	}, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req MailRequest
	if err := json.Unmarshal(toolutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.Confirmation, nil
}
