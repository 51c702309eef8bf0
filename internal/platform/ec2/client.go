package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// ZoneLister is the single inventory capability the engine depends on.
type ZoneLister interface {
	// ListZones returns the names of the region's available zones in the
	// order the inventory reports them. That order is the allocation
	// order, so callers must not sort it.
	ListZones(ctx context.Context, region string) ([]string, error)
}

// azAPI is the slice of the EC2 API the client calls. Narrowed for
// mocking in tests.
type azAPI interface {
	DescribeAvailabilityZones(ctx context.Context, params *ec2.DescribeAvailabilityZonesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAvailabilityZonesOutput, error)
}

// Client queries availability zones through the AWS SDK.
type Client struct {
	cfg aws.Config

	// newAPI builds a region-bound EC2 API. Replaced in tests.
	newAPI func(region string) azAPI
}

// Option customizes client construction.
type Option func(*options)

type options struct {
	credentials aws.CredentialsProvider
}

// WithStaticCredentials uses a fixed access/secret key pair instead of
// the default credential chain.
func WithStaticCredentials(accessKey, secretKey string) Option {
	return func(o *options) {
		o.credentials = credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	}
}

// NewClient creates an EC2 client using the default AWS credential chain
// (environment, shared config, instance metadata).
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if o.credentials != nil {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(o.credentials))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	c := &Client{cfg: cfg}
	c.newAPI = func(region string) azAPI {
		return ec2.NewFromConfig(c.cfg, func(o *ec2.Options) {
			o.Region = region
		})
	}
	return c, nil
}

// ListZones queries the region's available zones. Any API failure,
// network or authorization alike, is reported as CatalogUnavailableError.
func (c *Client) ListZones(ctx context.Context, region string) ([]string, error) {
	api := c.newAPI(region)

	out, err := api.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{string(types.AvailabilityZoneStateAvailable)},
			},
		},
	})
	if err != nil {
		return nil, &CatalogUnavailableError{Region: region, Err: err}
	}

	zones := make([]string, 0, len(out.AvailabilityZones))
	for _, az := range out.AvailabilityZones {
		if az.ZoneName != nil {
			zones = append(zones, *az.ZoneName)
		}
	}
	return zones, nil
}
