package nexus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordedRequest captures what the server saw for later assertions.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

func recordingServer(t *testing.T, data any) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		rec.body = body
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "detail": "success", "data": data})
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestAgentInfoPublishFlag(t *testing.T) {
	cases := []struct {
		published bool
		want      string
	}{
		{published: true, want: "publish_status=1"},
		{published: false, want: "publish_status=0"},
	}
	for _, tc := range cases {
		srv, rec := recordingServer(t, AgentInfoData{})
		client := NewClient(srv.URL, srv.Client())

		if _, err := client.AgentInfo(context.Background(), 42, tc.published); err != nil {
			t.Fatalf("agent info: %v", err)
		}
		if rec.method != http.MethodGet {
			t.Fatalf("unexpected method: %s", rec.method)
		}
		if rec.path != "/v1/agent/agent_info/42" {
			t.Fatalf("unexpected path: %s", rec.path)
		}
		if rec.query != tc.want {
			t.Fatalf("published=%v: unexpected query %q", tc.published, rec.query)
		}
	}
}

func TestAgentInfoDecodesAggregate(t *testing.T) {
	srv, _ := recordingServer(t, AgentInfoData{
		App:   &AgentApp{AppID: 42, Name: "support bot"},
		Agent: &AgentSettings{AgentID: 7, ModelConfigID: 3},
		Abilities: []AgentAbility{
			{AgentAbilityID: 1, Name: "triage", Status: 1},
		},
	})
	client := NewClient(srv.URL, srv.Client())

	info, err := client.AgentInfo(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("agent info: %v", err)
	}
	if info.App == nil || info.App.Name != "support bot" {
		t.Fatalf("unexpected app: %+v", info.App)
	}
	if info.Agent == nil || info.Agent.AgentID != 7 {
		t.Fatalf("unexpected agent: %+v", info.Agent)
	}
	if len(info.Abilities) != 1 || info.Abilities[0].Name != "triage" {
		t.Fatalf("unexpected abilities: %+v", info.Abilities)
	}
}

func TestUpdateAgentBaseSendsPayload(t *testing.T) {
	srv, rec := recordingServer(t, AgentIdentity{AppID: 42, AgentID: 7})
	client := NewClient(srv.URL, srv.Client())

	identity, err := client.UpdateAgentBase(context.Background(), 7, AgentBaseUpdateRequest{
		Obligations:   "answer support tickets",
		ModelConfigID: 3,
		DatasetIDs:    []int64{10, 11},
	})
	if err != nil {
		t.Fatalf("update agent base: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/v1/agent/agent_base_update/7" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	var sent AgentBaseUpdateRequest
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.Obligations != "answer support tickets" || len(sent.DatasetIDs) != 2 {
		t.Fatalf("unexpected body: %+v", sent)
	}
	if identity.AgentID != 7 || identity.AppID != 42 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestSetAgentAbilities(t *testing.T) {
	srv, rec := recordingServer(t, nil)
	client := NewClient(srv.URL, srv.Client())

	err := client.SetAgentAbilities(context.Background(), 7, AgentAbilitiesSetRequest{
		AutoMatchAbility: 1,
		Abilities: []AgentAbility{
			{Name: "triage", Content: "classify the ticket", Status: 1},
		},
	})
	if err != nil {
		t.Fatalf("set abilities: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/v1/agent/agent_abilities_set/7" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	var sent AgentAbilitiesSetRequest
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.AutoMatchAbility != 1 || len(sent.Abilities) != 1 {
		t.Fatalf("unexpected body: %+v", sent)
	}
}

func TestSetAgentOutputSendsWholeRequest(t *testing.T) {
	srv, rec := recordingServer(t, nil)
	client := NewClient(srv.URL, srv.Client())

	err := client.SetAgentOutput(context.Background(), 7, AgentOutputSetRequest{
		DefaultOutputFormat: 2,
		AbilitiesOutputFormat: []AbilityOutputFormat{
			{AgentAbilityID: 1, OutputFormat: 1},
		},
	})
	if err != nil {
		t.Fatalf("set output: %v", err)
	}
	if rec.path != "/v1/agent/agent_output_set/7" {
		t.Fatalf("unexpected path: %s", rec.path)
	}
	var sent map[string]json.RawMessage
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	// The request struct is the whole body, not nested under a data key.
	if _, ok := sent["data"]; ok {
		t.Fatal("body must not nest the payload under a data key")
	}
	if _, ok := sent["default_output_format"]; !ok {
		t.Fatalf("missing default_output_format in body: %s", rec.body)
	}
}

func TestSetAgentEngine(t *testing.T) {
	srv, rec := recordingServer(t, nil)
	client := NewClient(srv.URL, srv.Client())

	if err := client.SetAgentEngine(context.Background(), 9, AgentEngineSetRequest{ModelConfigID: 5, AllowUploadFile: 1}); err != nil {
		t.Fatalf("set engine: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/v1/agent/agent_engine_set/9" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
}

func TestPublishAgentSendsNoBody(t *testing.T) {
	srv, rec := recordingServer(t, nil)
	client := NewClient(srv.URL, srv.Client())

	if err := client.PublishAgent(context.Background(), 7); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/v1/agent/agent_publish/7" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	if len(rec.body) != 0 {
		t.Fatalf("expected empty body, got %q", rec.body)
	}
}

func TestRunAgent(t *testing.T) {
	srv, rec := recordingServer(t, AgentRunResult{
		Outputs:         map[string]any{"text": "hello"},
		OutputsMarkdown: "**hello**",
	})
	client := NewClient(srv.URL, srv.Client())

	result, err := client.RunAgent(context.Background(), AgentRunRequest{
		AgentID:   7,
		AbilityID: 1,
		Inputs:    map[string]any{"input": "hello"},
	})
	if err != nil {
		t.Fatalf("run agent: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/v1/agent/agent_run" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	var sent AgentRunRequest
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.AgentID != 7 || sent.Inputs["input"] != "hello" {
		t.Fatalf("unexpected body: %+v", sent)
	}
	if result.OutputsMarkdown != "**hello**" {
		t.Fatalf("unexpected result: %+v", result)
	}
}
