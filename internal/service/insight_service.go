package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"therapy-insights-be/internal/dto"
	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/pkg/logger"
	"therapy-insights-be/internal/repository/contract"
	"therapy-insights-be/internal/repository/memory"
	"therapy-insights-be/internal/repository/specification"
	"therapy-insights-be/pkg/insight/aggregate"
	"therapy-insights-be/pkg/insight/generate"
	"therapy-insights-be/pkg/insight/parse"
	"therapy-insights-be/pkg/insight/prompt"

	"github.com/google/uuid"
)

var ErrNoPreview = errors.New("no generated insights to save")
var ErrInsightsNotFound = errors.New("no insights found for patient")

type IInsightService interface {
	// GeneratePatientInsights runs the full pipeline. It has no error return:
	// every failure inside the pipeline degrades to an empty, well-formed
	// result and is reported through the Outcome field.
	GeneratePatientInsights(ctx context.Context, patientId uuid.UUID) *dto.GenerateInsightsResponse

	SaveLatestForPatient(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error)
	FindByPatientId(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error)
	GetPreview(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error)
	DeleteByPatientId(ctx context.Context, patientId uuid.UUID) error
	ListAuditLogs(ctx context.Context, patientId uuid.UUID, req *dto.ListAuditLogsRequest) ([]dto.AuditLogResponse, error)
}

type insightService struct {
	aggregator       *aggregate.Aggregator
	formatter        *aggregate.Formatter
	prompts          *prompt.Builder
	dispatcher       *generate.Dispatcher
	insightMapper    *generate.Mapper
	insightRepo      contract.PatientInsightRepository
	auditLogRepo     contract.AuditLogRepository
	previewRepo      *memory.InsightPreviewRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewInsightService(
	aggregator *aggregate.Aggregator,
	formatter *aggregate.Formatter,
	prompts *prompt.Builder,
	dispatcher *generate.Dispatcher,
	insightMapper *generate.Mapper,
	insightRepo contract.PatientInsightRepository,
	auditLogRepo contract.AuditLogRepository,
	previewRepo *memory.InsightPreviewRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IInsightService {
	return &insightService{
		aggregator:       aggregator,
		formatter:        formatter,
		prompts:          prompts,
		dispatcher:       dispatcher,
		insightMapper:    insightMapper,
		insightRepo:      insightRepo,
		auditLogRepo:     auditLogRepo,
		previewRepo:      previewRepo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *insightService) GeneratePatientInsights(ctx context.Context, patientId uuid.UUID) *dto.GenerateInsightsResponse {
	agg := s.aggregator.Aggregate(ctx, patientId)
	generatedAt := time.Now()

	// No completed history: short-circuit before dispatch in either mode.
	if agg.SessionCount == 0 {
		res := &generate.Result{Mode: s.dispatcher.Mode()}
		if res.Mode == entity.GenerationModeMock {
			res.Model = generate.MockModel
		}
		insights := s.insightMapper.ToEntity(patientId, parse.Empty(), res, generatedAt)
		insights.Outcome = entity.OutcomeEmptyHistory
		return s.finishGeneration(ctx, insights, agg)
	}

	formatted := s.formatter.FormatAll(agg.Sessions)
	req := s.prompts.Build(formatted, agg.SessionCount)
	res := s.dispatcher.Generate(ctx, req, agg)

	normalized, outcome := s.interpret(patientId, res)
	insights := s.insightMapper.ToEntity(patientId, normalized, res, generatedAt)
	insights.Outcome = outcome
	return s.finishGeneration(ctx, insights, agg)
}

// interpret turns the raw generation result into normalized categories plus
// an outcome tag. Live output is parsed tolerantly; mock output is trusted
// JSON produced in-process, so a decode failure there is a bug worth logging.
func (s *insightService) interpret(patientId uuid.UUID, res *generate.Result) (*parse.Normalized, entity.GenerationOutcome) {
	if res.Err != "" {
		s.logger.Warn("InsightService", "Generation failed, returning empty insights", map[string]interface{}{
			"patientId": patientId,
			"mode":      string(res.Mode),
			"error":     res.Err,
		})
		return parse.Empty(), entity.OutcomeGenerationFailed
	}

	if res.Mode == entity.GenerationModeMock {
		parsed, err := parse.Decode(res.Text)
		if err != nil {
			s.logger.Error("InsightService", "Mock payload did not decode", map[string]interface{}{
				"patientId": patientId,
				"error":     err.Error(),
			})
			return parse.Empty(), entity.OutcomeParseFailed
		}
		return parse.Normalize(parsed), entity.OutcomeOK
	}

	parsed, ok := parse.Extract(res.Text)
	if !ok {
		s.logger.Warn("InsightService", "Model response was not parseable JSON", map[string]interface{}{
			"patientId": patientId,
			"model":     res.Model,
		})
		return parse.Empty(), entity.OutcomeParseFailed
	}
	return parse.Normalize(parsed), entity.OutcomeOK
}

func (s *insightService) finishGeneration(ctx context.Context, insights *entity.PatientInsights, agg *entity.AggregatedSessions) *dto.GenerateInsightsResponse {
	s.previewRepo.Save(insights)
	s.publishAudit(ctx, insights.PatientId, dto.AuditActionGenerated, insights)

	resp := &dto.GenerateInsightsResponse{
		PatientInsightsResponse: *toInsightsResponse(insights),
		SessionCount:            agg.SessionCount,
		Outcome:                 string(insights.Outcome),
	}
	if agg.DateRange != nil {
		resp.DateRange = &dto.DateRangeDTO{
			Earliest: agg.DateRange.Earliest,
			Latest:   agg.DateRange.Latest,
		}
	}
	return resp
}

// SaveLatestForPatient persists the most recently generated (previewed)
// insights for the patient. Saving without a prior generation is an error.
func (s *insightService) SaveLatestForPatient(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error) {
	insights, ok := s.previewRepo.Get(patientId)
	if !ok {
		return nil, ErrNoPreview
	}

	saved, err := s.insightRepo.SaveForPatient(ctx, insights)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, patientId, dto.AuditActionSaved, saved)
	return toInsightsResponse(saved), nil
}

func (s *insightService) FindByPatientId(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error) {
	insights, err := s.insightRepo.FindByPatientId(ctx, patientId)
	if err != nil {
		return nil, err
	}
	if insights == nil {
		return nil, ErrInsightsNotFound
	}
	return toInsightsResponse(insights), nil
}

func (s *insightService) GetPreview(ctx context.Context, patientId uuid.UUID) (*dto.PatientInsightsResponse, error) {
	insights, ok := s.previewRepo.Get(patientId)
	if !ok {
		return nil, ErrNoPreview
	}
	return toInsightsResponse(insights), nil
}

func (s *insightService) DeleteByPatientId(ctx context.Context, patientId uuid.UUID) error {
	if err := s.insightRepo.DeleteByPatientId(ctx, patientId); err != nil {
		return err
	}
	s.previewRepo.Delete(patientId)
	s.publishAudit(ctx, patientId, dto.AuditActionDeleted, nil)
	return nil
}

func (s *insightService) ListAuditLogs(ctx context.Context, patientId uuid.UUID, req *dto.ListAuditLogsRequest) ([]dto.AuditLogResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	logs, err := s.auditLogRepo.FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, dto.AuditLogResponse{
			Id:        log.Id,
			PatientId: log.PatientId,
			Action:    log.Action,
			Detail:    log.Detail,
			CreatedAt: log.CreatedAt,
		})
	}
	return responses, nil
}

// publishAudit is fire-and-forget: the audit trail is auxiliary and never
// blocks or fails the main operation.
func (s *insightService) publishAudit(ctx context.Context, patientId uuid.UUID, action string, insights *entity.PatientInsights) {
	msg := dto.InsightAuditMessage{
		PatientId: patientId,
		Action:    action,
		At:        time.Now(),
	}
	if insights != nil {
		msg.Mode = string(insights.Mode)
		msg.Model = insights.Model
		msg.Outcome = string(insights.Outcome)
		msg.ItemCount = len(insights.Patterns) + len(insights.ProgressTrends) +
			len(insights.RiskIndicators) + len(insights.TreatmentGaps)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("InsightService", "Failed to publish audit message", map[string]interface{}{
			"patientId": patientId,
			"action":    action,
			"error":     err.Error(),
		})
	}
}

func toInsightsResponse(insights *entity.PatientInsights) *dto.PatientInsightsResponse {
	return &dto.PatientInsightsResponse{
		Id:             insights.Id,
		PatientId:      insights.PatientId,
		Patterns:       toItemDTOs(insights.Patterns),
		ProgressTrends: toItemDTOs(insights.ProgressTrends),
		RiskIndicators: toItemDTOs(insights.RiskIndicators),
		TreatmentGaps:  toItemDTOs(insights.TreatmentGaps),
		GeneratedAt:    insights.GeneratedAt,
		Mode:           string(insights.Mode),
		Model:          insights.Model,
		TokensUsed:     insights.TokensUsed,
		SavedAt:        insights.SavedAt,
	}
}

func toItemDTOs(items []entity.InsightItem) []dto.InsightItemDTO {
	dtos := make([]dto.InsightItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, dto.InsightItemDTO{
			Content:     item.Content,
			Confidence:  item.Confidence,
			SessionRefs: item.SessionRefs,
			FirstSeen:   item.FirstSeen,
			LastSeen:    item.LastSeen,
		})
	}
	return dtos
}
