package nexus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ChatroomAgent binds an agent to a chatroom and controls whether it
// answers automatically.
type ChatroomAgent struct {
	AgentID int64 `json:"agent_id"`
	Active  int   `json:"active"`
}

// ChatroomCreateRequest creates a chatroom with its initial agent roster.
type ChatroomCreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	MaxRound    int             `json:"max_round"`
	Agents      []ChatroomAgent `json:"agent"`
}

// ChatroomIdentity is returned by chatroom create and update calls.
type ChatroomIdentity struct {
	ChatroomID int64 `json:"chatroom_id"`
}

// ChatroomSummary is one entry of a chatroom listing.
type ChatroomSummary struct {
	ChatroomID  int64  `json:"chatroom_id"`
	AppID       int64  `json:"app_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxRound    int    `json:"max_round"`
	Active      int    `json:"active"`
	Status      int    `json:"status"`
}

// ChatroomListData wraps a paginated chatroom listing.
type ChatroomListData struct {
	List       []ChatroomSummary `json:"list"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ChatroomDetailAgent is an agent entry of a chatroom detail view.
type ChatroomDetailAgent struct {
	AgentID int64  `json:"agent_id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Active  int    `json:"active"`
	Type    string `json:"type"`
}

// ChatroomDetailData is the full configuration view of one chatroom.
type ChatroomDetailData struct {
	ChatInfo       map[string]any        `json:"chat_info"`
	Agents         []ChatroomDetailAgent `json:"agent_list"`
	MaxRound       int                   `json:"max_round"`
	SmartSelection int                   `json:"smart_selection"`
	ChatroomStatus int                   `json:"chatroom_status"`
}

// ChatroomMessage is one historical message of a chatroom.
type ChatroomMessage struct {
	MessageID int64  `json:"id"`
	AgentID   int64  `json:"agent_id"`
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	IsRead    int    `json:"is_read"`
	CreatedAt string `json:"created_time"`
}

// ChatroomMessagesData wraps a paginated message history.
type ChatroomMessagesData struct {
	List       []ChatroomMessage `json:"list"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ChatroomList fetches a paginated chatroom listing, optionally filtered
// by name.
func (c *Client) ChatroomList(ctx context.Context, page, pageSize int, name string) (*ChatroomListData, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	if name != "" {
		query.Set("name", name)
	}
	var data ChatroomListData
	if err := c.get(ctx, "/v1/chatroom?"+query.Encode(), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateChatroom creates a chatroom and returns its identifier.
func (c *Client) CreateChatroom(ctx context.Context, req ChatroomCreateRequest) (*ChatroomIdentity, error) {
	var identity ChatroomIdentity
	if err := c.post(ctx, "/v1/chatroom", req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// RecentChatrooms lists chatrooms by most recent access, excluding the
// given chatroom.
func (c *Client) RecentChatrooms(ctx context.Context, excludeChatroomID int64) (*ChatroomListData, error) {
	var data ChatroomListData
	endpoint := fmt.Sprintf("/v1/chatroom/recent?chatroom_id=%d", excludeChatroomID)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteChatroom removes a chatroom. The platform soft-deletes the room
// and its app record.
func (c *Client) DeleteChatroom(ctx context.Context, chatroomID int64) error {
	endpoint := fmt.Sprintf("/v1/chatroom/%d", chatroomID)
	return c.delete(ctx, endpoint, nil)
}

// ChatroomDetails fetches the configuration and agent roster of a chatroom.
func (c *Client) ChatroomDetails(ctx context.Context, chatroomID int64) (*ChatroomDetailData, error) {
	var data ChatroomDetailData
	endpoint := fmt.Sprintf("/v1/chatroom/%d/details", chatroomID)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ToggleSmartSelection enables or disables smart agent selection for a
// chatroom.
func (c *Client) ToggleSmartSelection(ctx context.Context, chatroomID int64, enabled bool) error {
	flag := 0
	if enabled {
		flag = 1
	}
	endpoint := fmt.Sprintf("/v1/chatroom/%d/smart_selection", chatroomID)
	return c.post(ctx, endpoint, struct {
		SmartSelection int `json:"smart_selection"`
	}{SmartSelection: flag}, nil)
}

// UpdateChatroom updates a chatroom's settings and reconciles its agent
// roster against the provided list.
func (c *Client) UpdateChatroom(ctx context.Context, chatroomID int64, req ChatroomCreateRequest) (*ChatroomIdentity, error) {
	var identity ChatroomIdentity
	endpoint := fmt.Sprintf("/v1/chatroom/%d/update_chatroom", chatroomID)
	if err := c.post(ctx, endpoint, req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// SetChatroomAgent switches automatic answering on or off for one agent of
// a chatroom.
func (c *Client) SetChatroomAgent(ctx context.Context, chatroomID, agentID int64, active bool) error {
	flag := 0
	if active {
		flag = 1
	}
	endpoint := fmt.Sprintf("/v1/chatroom/%d/agents/%d/setting", chatroomID, agentID)
	return c.put(ctx, endpoint, struct {
		Active int `json:"active"`
	}{Active: flag}, nil)
}

// ChatroomMessages fetches the paginated message history of a chatroom.
// Fetching marks the returned messages as read server side.
func (c *Client) ChatroomMessages(ctx context.Context, chatroomID int64, page, pageSize int) (*ChatroomMessagesData, error) {
	var data ChatroomMessagesData
	endpoint := fmt.Sprintf("/v1/chatroom/%d/chatroom_message?page=%d&page_size=%d", chatroomID, page, pageSize)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
