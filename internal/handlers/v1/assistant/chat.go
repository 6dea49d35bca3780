package assistant

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	advisor "github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

// ChatBody is the request body for a chat message.
type ChatBody struct {
	Message    string `json:"message" minLength:"1" maxLength:"2000"`
	Attachment []byte `json:"attachment,omitempty" doc:"Base64 file contents, for example a receipt photo"`
	MIMEType   string `json:"mimeType,omitempty" doc:"MIME type of the attachment"`
	Language   string `json:"language,omitempty" maxLength:"40" doc:"Language to reply in, defaults to English"`
}

type ChatInput struct {
	Body ChatBody
}

type CreatedGoal struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	TargetAmount      string `json:"targetAmount"`
	MonthlyAllocation string `json:"monthlyAllocation" doc:"Amount to save each month to reach the target by the deadline"`
}

type ChatResponse struct {
	Reply       string       `json:"reply"`
	CreatedGoal *CreatedGoal `json:"createdGoal,omitempty" doc:"Set when the assistant created a goal for you"`
}

type ChatOutput struct {
	Body ChatResponse
}

type chatter interface {
	Chat(ctx context.Context, userID uuid.UUID, in service.ChatInput) (service.ChatResult, error)
}

// ChatHandler handles POST /v1/assistant/chat.
type ChatHandler struct {
	AssistantService chatter
}

func NewChatHandler(svc chatter) *ChatHandler {
	return &ChatHandler{AssistantService: svc}
}

func (h *ChatHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assistant-chat",
		Method:      http.MethodPost,
		Path:        "/v1/assistant/chat",
		Summary:     "Chat with the assistant",
		Description: "Answers a question about your finances. The assistant may create a savings goal.",
		Tags:        []string{"Assistant"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *ChatHandler) handle(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	in := service.ChatInput{Message: input.Body.Message, Language: input.Body.Language}
	if len(input.Body.Attachment) > 0 {
		if input.Body.MIMEType == "" {
			return nil, huma.Error400BadRequest("mimeType is required with an attachment", &huma.ErrorDetail{
				Message:  "required",
				Location: "body.mimeType",
			})
		}
		in.Attachment = &advisor.Attachment{Data: input.Body.Attachment, MIMEType: input.Body.MIMEType}
	}

	stopTimer := apierr.Timing(ctx, "chatMs")
	result, err := h.AssistantService.Chat(ctx, userID, in)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "assistant failed to answer", err)
	}

	resp := ChatResponse{Reply: result.Reply}
	if g := result.CreatedGoal; g != nil {
		resp.CreatedGoal = &CreatedGoal{
			ID:                g.ID.String(),
			Title:             g.Title,
			TargetAmount:      g.TargetAmount.StringFixed(2),
			MonthlyAllocation: result.MonthlyAllocation.StringFixed(2),
		}
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("goalID", g.ID.String())
		}
	}
	return &ChatOutput{Body: resp}, nil
}
