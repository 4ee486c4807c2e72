package email

import "strconv"

// SendClothCreatedEmail tells the catalog owner a new cloth was listed.
func (c *Client) SendClothCreatedEmail(to, clothID, clothName string, price float64) error {
	data := map[string]string{
		"ClothName":  clothName,
		"ClothID":    clothID,
		"ClothPrice": strconv.FormatFloat(price, 'f', 2, 64),
	}

	return c.SendEmail(
		to,
		"New cloth listed: "+clothName,
		TemplateClothCreated,
		data,
	)
}
