package bot

import (
	"context"

	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/id"
)

type matrixSender struct {
	client *mautrix.Client
}

// NewMatrixSender оборачивает клиент Matrix в интерфейс Sender.
func NewMatrixSender(c *mautrix.Client) Sender {
	return matrixSender{client: c}
}

func (s matrixSender) SendText(ctx context.Context, roomID id.RoomID, text string) error {
	_, err := s.client.SendText(ctx, roomID, text)
	return err
}
