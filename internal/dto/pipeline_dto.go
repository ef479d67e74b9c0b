package dto

type MoveCandidateRequest struct {
	JobId       int    `json:"job_id" validate:"required"`
	CandidateId int    `json:"candidate_id" validate:"required"`
	SourceStage string `json:"source_stage" validate:"required"`
	TargetStage string `json:"target_stage" validate:"required"`
}

type MoveCandidateResponse struct {
	JobId       int    `json:"job_id"`
	CandidateId int    `json:"candidate_id"`
	Stage       string `json:"stage"`
}

type BoardResponse struct {
	JobId  int              `json:"job_id"`
	Stages map[string][]int `json:"stages"`
}

type CandidateStageResponse struct {
	JobId       int    `json:"job_id"`
	CandidateId int    `json:"candidate_id"`
	Stage       string `json:"stage,omitempty"`
	InPipeline  bool   `json:"in_pipeline"`
}

type HiredResponse struct {
	JobId        int   `json:"job_id"`
	CandidateIds []int `json:"candidate_ids"`
}

// HiredAcrossJobsResponse maps candidate id -> owning job id.
type HiredAcrossJobsResponse struct {
	Hired map[int]int `json:"hired"`
}

// PublishPipelineEventMessage is the watermill payload emitted after a
// successful pipeline move.
type PublishPipelineEventMessage struct {
	JobId       int    `json:"job_id"`
	CandidateId int    `json:"candidate_id"`
	SourceStage string `json:"source_stage"`
	TargetStage string `json:"target_stage"`
	Actor       string `json:"actor"`
}
