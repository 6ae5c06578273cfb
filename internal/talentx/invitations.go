package talentx

import (
	"context"
	"net/http"
	"net/url"
)

const invitationsPath = "invitations"

// ListInvitations lists the invitations of the current identity.
func (c *Client) ListInvitations(ctx context.Context) ([]Invitation, error) {
	raw, err := c.call(ctx, http.MethodGet, invitationsPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	var invitations []Invitation
	if err := decode(raw, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// CreateInvitation invites a talent. The service takes the job snapshot itself.
func (c *Client) CreateInvitation(ctx context.Context, jobID, talentID string) (*Invitation, error) {
	raw, err := c.call(ctx, http.MethodPost, invitationsPath, nil, invitePayload{JobID: jobID, TalentID: talentID}, true)
	if err != nil {
		return nil, err
	}

	var inv Invitation
	if err := decode(raw, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) RespondToInvitation(ctx context.Context, invitationID, status string) (*Invitation, error) {
	path := invitationsPath + "/" + url.PathEscape(invitationID) + "/respond"

	raw, err := c.call(ctx, http.MethodPost, path, nil, respondPayload{Status: status}, true)
	if err != nil {
		return nil, err
	}

	var inv Invitation
	if err := decode(raw, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
