package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterLister is the subset of the SSM client used to read a parameter path
type ParameterLister interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// NewSSMClient builds an SSM client from the default AWS credential chain
func NewSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ExportSSMParameters copies every parameter under parameterPath into the process
// environment. The last path segment becomes the variable name, upper-cased.
// Variables that are already set are left untouched. Returns the number exported.
func ExportSSMParameters(ctx context.Context, client ParameterLister, parameterPath string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(parameterPath),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	exported := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return exported, fmt.Errorf("get parameters by path %s: %w", parameterPath, err)
		}

		for _, param := range page.Parameters {
			name := envNameForParameter(aws.ToString(param.Name))
			if name == "" {
				continue
			}
			if _, exists := os.LookupEnv(name); exists {
				log.Debug().Str("name", name).Msg("Skipping SSM parameter already set in environment")
				continue
			}
			if err := os.Setenv(name, aws.ToString(param.Value)); err != nil {
				return exported, fmt.Errorf("set %s: %w", name, err)
			}
			exported++
		}
	}
	return exported, nil
}

func envNameForParameter(parameterName string) string {
	base := path.Base(parameterName)
	if base == "." || base == "/" {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(base, "-", "_"))
}
