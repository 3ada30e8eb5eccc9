package config

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParameterLister struct {
	pages [][]types.Parameter
	err   error
	calls int
}

func (f *fakeParameterLister) GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++

	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestExportSSMParameters(t *testing.T) {
	t.Setenv("CONSTRUCTCO_EXISTING", "keep")
	os.Unsetenv("CONSTRUCTCO_SECRET_KEY")
	os.Unsetenv("CONSTRUCTCO_DB_URL")
	t.Cleanup(func() {
		os.Unsetenv("CONSTRUCTCO_SECRET_KEY")
		os.Unsetenv("CONSTRUCTCO_DB_URL")
	})

	lister := &fakeParameterLister{pages: [][]types.Parameter{
		{
			{Name: aws.String("/site/prod/constructco-secret-key"), Value: aws.String("s3cret")},
			{Name: aws.String("/site/prod/CONSTRUCTCO_EXISTING"), Value: aws.String("override")},
		},
		{
			{Name: aws.String("/site/prod/nested/constructco_db_url"), Value: aws.String("postgres://db")},
		},
	}}

	n, err := ExportSSMParameters(context.Background(), lister, "/site/prod")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, lister.calls)
	assert.Equal(t, "s3cret", os.Getenv("CONSTRUCTCO_SECRET_KEY"))
	assert.Equal(t, "postgres://db", os.Getenv("CONSTRUCTCO_DB_URL"))
	assert.Equal(t, "keep", os.Getenv("CONSTRUCTCO_EXISTING"))
}

func TestExportSSMParametersError(t *testing.T) {
	lister := &fakeParameterLister{err: errors.New("access denied")}

	_, err := ExportSSMParameters(context.Background(), lister, "/site/prod")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/site/prod")
}
