package api

import "context"

// SubmitKYC submits the caller's KYC details.
func (c *Client) SubmitKYC(ctx context.Context, input KYCInput) (*KYCResponse, error) {
	data, err := c.post(ctx, "/kyc/submit", input)
	if err != nil {
		return nil, err
	}
	return decode[KYCResponse]("/kyc/submit", data)
}
