package nexus

import (
	"context"
	"fmt"
)

// AgentApp describes the application record an agent belongs to.
type AgentApp struct {
	AppID          int64  `json:"app_id"`
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	IconBackground string `json:"icon_background"`
	IsPublic       int    `json:"is_public"`
	EnableAPI      int    `json:"enable_api"`
	PublishStatus  int    `json:"publish_status"`
	CreatedTime    string `json:"created_time"`
	Status         int    `json:"status"`
	APIURL         string `json:"api_url"`
}

// AgentSettings carries the agent's own configuration as stored server side.
type AgentSettings struct {
	AgentID             int64          `json:"agent_id"`
	UserID              int64          `json:"user_id"`
	Obligations         string         `json:"obligations"`
	InputVariables      map[string]any `json:"input_variables"`
	AutoMatchAbility    int            `json:"auto_match_ability"`
	DefaultOutputFormat int            `json:"default_output_format"`
	ModelConfigID       int64          `json:"m_config_id"`
	AllowUploadFile     int            `json:"allow_upload_file"`
	PublishStatus       int            `json:"publish_status"`
	PublishedTime       string         `json:"published_time"`
	CreatedTime         string         `json:"created_time"`
	Status              int            `json:"status"`
}

// AgentAbility is a single configured ability of an agent.
type AgentAbility struct {
	AgentAbilityID int64  `json:"agent_ability_id"`
	Name           string `json:"name"`
	Content        string `json:"content"`
	Status         int    `json:"status"`
	OutputFormat   int    `json:"output_format"`
}

// AgentDataset links an agent to one of its retrieval datasets.
type AgentDataset struct {
	DatasetID int64  `json:"dataset_id"`
	AppID     int64  `json:"app_id"`
	Name      string `json:"name"`
}

// ModelConfiguration identifies a model configuration available to the agent.
type ModelConfiguration struct {
	ModelConfigID int64  `json:"m_config_id"`
	ModelID       int64  `json:"m_id"`
	ModelName     string `json:"m_name"`
	SupplierID    int64  `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
}

// AgentInfoData is the aggregate view returned by AgentInfo.
type AgentInfoData struct {
	App                 *AgentApp            `json:"app"`
	Agent               *AgentSettings       `json:"agent"`
	Datasets            []AgentDataset       `json:"agent_dataset_relation_list"`
	Abilities           []AgentAbility       `json:"agent_abilities_list"`
	ModelConfigurations []ModelConfiguration `json:"m_configurations_list"`
	IsCreator           int                  `json:"is_creator"`
	CreatorNickname     string               `json:"creator_nickname"`
}

// AgentBaseUpdateRequest updates an agent's base settings.
type AgentBaseUpdateRequest struct {
	IsPublic            int            `json:"is_public"`
	EnableAPI           int            `json:"enable_api"`
	Obligations         string         `json:"obligations"`
	InputVariables      map[string]any `json:"input_variables,omitempty"`
	DatasetIDs          []int64        `json:"dataset_ids,omitempty"`
	ModelConfigID       int64          `json:"m_config_id"`
	AllowUploadFile     int            `json:"allow_upload_file"`
	DefaultOutputFormat int            `json:"default_output_format"`
}

// AgentIdentity is returned by mutations that (re)create the agent row.
type AgentIdentity struct {
	AppID   int64 `json:"app_id"`
	AgentID int64 `json:"agent_id"`
}

// AgentAbilitiesSetRequest replaces the agent's ability list.
type AgentAbilitiesSetRequest struct {
	AutoMatchAbility int            `json:"auto_match_ability"`
	Abilities        []AgentAbility `json:"agent_abilities"`
}

// AbilityOutputFormat overrides the output format of one ability.
type AbilityOutputFormat struct {
	AgentAbilityID int64 `json:"agent_ability_id"`
	OutputFormat   int   `json:"output_format"`
}

// AgentOutputSetRequest configures the agent's output formats.
type AgentOutputSetRequest struct {
	DefaultOutputFormat   int                   `json:"default_output_format"`
	AbilitiesOutputFormat []AbilityOutputFormat `json:"abilities_output_format_data,omitempty"`
}

// AgentEngineSetRequest configures the agent's execution engine.
type AgentEngineSetRequest struct {
	ModelConfigID   int64 `json:"m_config_id"`
	AllowUploadFile int   `json:"allow_upload_file"`
}

// AgentRunRequest triggers execution of an agent with a given input.
type AgentRunRequest struct {
	AgentID   int64          `json:"agent_id"`
	AbilityID int64          `json:"ability_id"`
	Inputs    map[string]any `json:"input_dict,omitempty"`
	Prompt    map[string]any `json:"prompt,omitempty"`
}

// AgentRunResult carries the outputs of a completed agent run.
type AgentRunResult struct {
	Outputs         map[string]any `json:"outputs"`
	OutputsMarkdown string         `json:"outputs_md"`
}

// AgentInfo fetches the aggregate agent view for an application. When
// published is true the published revision is returned, otherwise the
// draft revision.
func (c *Client) AgentInfo(ctx context.Context, appID int64, published bool) (*AgentInfoData, error) {
	status := 0
	if published {
		status = 1
	}
	var info AgentInfoData
	endpoint := fmt.Sprintf("/v1/agent/agent_info/%d?publish_status=%d", appID, status)
	if err := c.get(ctx, endpoint, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateAgentBase updates the agent's base settings.
func (c *Client) UpdateAgentBase(ctx context.Context, agentID int64, req AgentBaseUpdateRequest) (*AgentIdentity, error) {
	var identity AgentIdentity
	endpoint := fmt.Sprintf("/v1/agent/agent_base_update/%d", agentID)
	if err := c.put(ctx, endpoint, req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// SetAgentAbilities replaces the agent's ability list.
func (c *Client) SetAgentAbilities(ctx context.Context, agentID int64, req AgentAbilitiesSetRequest) error {
	endpoint := fmt.Sprintf("/v1/agent/agent_abilities_set/%d", agentID)
	return c.put(ctx, endpoint, req, nil)
}

// SetAgentOutput configures the agent's default and per-ability output formats.
func (c *Client) SetAgentOutput(ctx context.Context, agentID int64, req AgentOutputSetRequest) error {
	endpoint := fmt.Sprintf("/v1/agent/agent_output_set/%d", agentID)
	return c.put(ctx, endpoint, req, nil)
}

// SetAgentEngine configures the model the agent runs on.
func (c *Client) SetAgentEngine(ctx context.Context, agentID int64, req AgentEngineSetRequest) error {
	endpoint := fmt.Sprintf("/v1/agent/agent_engine_set/%d", agentID)
	return c.put(ctx, endpoint, req, nil)
}

// PublishAgent exposes the agent's current draft for use. The endpoint
// takes no request body.
func (c *Client) PublishAgent(ctx context.Context, agentID int64) error {
	endpoint := fmt.Sprintf("/v1/agent/agent_publish/%d", agentID)
	return c.put(ctx, endpoint, nil, nil)
}

// RunAgent executes an agent with the given input and returns its outputs.
func (c *Client) RunAgent(ctx context.Context, req AgentRunRequest) (*AgentRunResult, error) {
	var result AgentRunResult
	if err := c.post(ctx, "/v1/agent/agent_run", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
