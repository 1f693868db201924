package dataverse

import (
	"context"
	"fmt"

	httpclient "github.com/wkcda/crm-gateway/libs/go/client/http"

	"github.com/pkg/errors"
)

type optionLabel struct {
	UserLocalizedLabel struct {
		Label string `json:"Label"`
	} `json:"UserLocalizedLabel"`
}

type optionMetadata struct {
	Value int         `json:"Value"`
	Label optionLabel `json:"Label"`
}

type optionSetMetadata struct {
	Options []optionMetadata `json:"Options"`
}

type picklistAttributeResponse struct {
	OptionSet optionSetMetadata `json:"OptionSet"`
}

// GetOptionSetValue resolves an option-set label to its integer value via
// the entity metadata. Returns ErrOptionNotFound when the label does not
// exist on the attribute; callers must treat that as a validation failure
// rather than defaulting to 0.
func (c *Client) GetOptionSetValue(ctx context.Context, entityLogicalName, attributeLogicalName, label string) (int, error) {
	auth, err := c.authOption(ctx)
	if err != nil {
		return 0, err
	}

	path := fmt.Sprintf(
		"/EntityDefinitions(LogicalName='%s')/Attributes(LogicalName='%s')/Microsoft.Dynamics.CRM.PicklistAttributeMetadata",
		entityLogicalName, attributeLogicalName)

	resp, err := c.httpClient.Get(ctx, path,
		auth,
		httpclient.WithQueryParam("$select", "LogicalName"),
		httpclient.WithQueryParam("$expand", "OptionSet($select=Options)"),
	)
	if err != nil {
		return 0, wrapErr(err, "option set metadata for "+entityLogicalName+"."+attributeLogicalName)
	}

	var metadata picklistAttributeResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &metadata); err != nil {
		return 0, errors.Wrap(err, "decode option set metadata")
	}

	for _, option := range metadata.OptionSet.Options {
		if option.Label.UserLocalizedLabel.Label == label {
			return option.Value, nil
		}
	}

	return 0, fmt.Errorf("%w: %s.%s label %q", ErrOptionNotFound, entityLogicalName, attributeLogicalName, label)
}
