package client

import (
	"couplepath/services/progress-service/pkg/progresspb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type ProgressClient struct {
	Client progresspb.ProgressServiceClient
	conn   *grpc.ClientConn
}

func NewProgressClient(url string) (*ProgressClient, error) {
	cc, err := grpc.NewClient(url, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &ProgressClient{
		Client: progresspb.NewProgressServiceClient(cc),
		conn:   cc,
	}, nil
}

func (c *ProgressClient) Close() error {
	return c.conn.Close()
}
