package services

import (
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"mapfuture/internal/models/request_models"
	"mapfuture/pkg/utils"
)

const (
	chatOpenTag  = "<CHAT>\n"
	chatCloseTag = "\n</CHAT>"
)

// ProviderPayload is the JSON object sent to the model inside the <CHAT> tag.
// Regenerate and Feedback are omitted when not provided.
type ProviderPayload struct {
	Country        string   `json:"country"`
	Interest       string   `json:"interest"`
	Days           int      `json:"days"`
	StartDate      string   `json:"startDate"`
	ApprovedCities []string `json:"Approved_Cities"`
	Regenerate     *int     `json:"regenerate,omitempty"`
	Feedback       string   `json:"feedback,omitempty"`
}

type TravelPlanServiceInterface interface {
	CreateTravelPlan(ctx context.Context, req request_models.TravelPlanRequest) (json.RawMessage, error)
	RelayCompletion(ctx context.Context, userMessage, systemPromptOverride string) (string, error)
}

type TravelPlanService struct {
	client         utils.CompletionClientInterface
	promptPath     string
	promptOverride string
	log            *zap.Logger
}

// NewTravelPlanService builds the service. promptOverride, when non-empty,
// replaces the prompt file for every request.
func NewTravelPlanService(
	client utils.CompletionClientInterface,
	promptPath string,
	promptOverride string,
	log *zap.Logger,
) TravelPlanServiceInterface {
	return &TravelPlanService{
		client:         client,
		promptPath:     promptPath,
		promptOverride: promptOverride,
		log:            log,
	}
}

func BuildPayload(req request_models.TravelPlanRequest) ProviderPayload {
	payload := ProviderPayload{
		Country:        deref(req.Country),
		Interest:       deref(req.Interest),
		StartDate:      req.StartDate,
		ApprovedCities: make([]string, 0, len(req.ApprovedCities)),
		Regenerate:     req.Regenerate,
	}
	if req.Days != nil {
		payload.Days = *req.Days
	}
	for _, city := range req.ApprovedCities {
		payload.ApprovedCities = append(payload.ApprovedCities, deref(city))
	}
	if req.Feedback != nil {
		payload.Feedback = *req.Feedback
	}
	return payload
}

// BuildUserMessage serializes the payload as compact JSON wrapped in <CHAT> tags.
// The encoder escapes '<' and '>', so field values cannot close the tag.
func BuildUserMessage(req request_models.TravelPlanRequest) (string, error) {
	encoded, err := json.Marshal(BuildPayload(req))
	if err != nil {
		return "", fmt.Errorf("%w: encode payload: %v", utils.ErrInternalFailure, err)
	}
	return chatOpenTag + string(encoded) + chatCloseTag, nil
}

// ResolveSystemPrompt never fails: an unreadable prompt file yields
// utils.DefaultSystemPrompt.
func (s *TravelPlanService) ResolveSystemPrompt(override string) string {
	if override != "" {
		return override
	}
	if s.promptOverride != "" {
		return s.promptOverride
	}

	prompt, err := utils.LoadPromptFromFile(s.promptPath)
	if err != nil {
		s.log.Warn("system prompt unavailable, using default",
			zap.String("path", s.promptPath),
			zap.Error(err),
		)
		return utils.DefaultSystemPrompt
	}
	return prompt
}

// RelayCompletion returns the model's text unmodified.
func (s *TravelPlanService) RelayCompletion(ctx context.Context, userMessage, systemPromptOverride string) (string, error) {
	systemPrompt := s.ResolveSystemPrompt(systemPromptOverride)
	return s.client.Complete(ctx, systemPrompt, userMessage)
}

func (s *TravelPlanService) CreateTravelPlan(ctx context.Context, req request_models.TravelPlanRequest) (json.RawMessage, error) {
	userMessage, err := BuildUserMessage(req)
	if err != nil {
		return nil, err
	}

	s.log.Debug("relaying travel plan request", zap.String("user_message", userMessage))

	completion, err := s.RelayCompletion(ctx, userMessage, "")
	if err != nil {
		return nil, err
	}

	var plan json.RawMessage
	if err := json.Unmarshal([]byte(completion), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCompletion, err)
	}
	return plan, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
