package nexus

import (
	"context"
	"fmt"
)

// datasetListSelector is the fixed selector segment of the dataset listing
// endpoint, scoping the listing to agent-attachable datasets.
const datasetListSelector = 2

// Dataset is one entry of the dataset listing.
type Dataset struct {
	DatasetID int64  `json:"dataset_id"`
	AppID     int64  `json:"app_id"`
	Name      string `json:"name"`
}

// DatasetListData wraps the dataset listing payload.
type DatasetListData struct {
	List []Dataset `json:"list"`
}

// DatasetList fetches the datasets available for attaching to agents.
func (c *Client) DatasetList(ctx context.Context) (*DatasetListData, error) {
	var data DatasetListData
	endpoint := fmt.Sprintf("/v1/vector/dataset_list/%d", datasetListSelector)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
