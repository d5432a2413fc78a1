package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSaver_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "download")
	loc, err := DirSaver{Dir: dir}.Save(context.Background(), File{Name: "employee_7_payroll.csv", Data: []byte("id\n7")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "employee_7_payroll.csv"), loc)

	b, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "id\n7", string(b))
}

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Saver_PutsObjectUnderPrefix(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3SaverWithClient(fake, "payroll", "/exports/")

	loc, err := s.Save(context.Background(), File{Name: "employee_7_payroll.csv", ContentType: MIMECSV, Data: []byte("id\n7")})
	require.NoError(t, err)

	assert.Equal(t, "s3://payroll/exports/employee_7_payroll.csv", loc)
	assert.Equal(t, "payroll", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "exports/employee_7_payroll.csv", aws.ToString(fake.in.Key))
	assert.Equal(t, MIMECSV, aws.ToString(fake.in.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(fake.in.ContentLength))
	assert.Equal(t, "id\n7", string(fake.body))
}

func TestS3Saver_NoPrefix(t *testing.T) {
	fake := &fakeS3{}
	loc, err := NewS3SaverWithClient(fake, "b", "").Save(context.Background(), File{Name: "x.csv"})
	require.NoError(t, err)
	assert.Equal(t, "s3://b/x.csv", loc)
}

func TestS3Saver_ErrorWrapped(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	_, err := NewS3SaverWithClient(fake, "b", "p").Save(context.Background(), File{Name: "x.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 put p/x.csv: access denied")
}

func TestNewS3Saver_RequiresBucket(t *testing.T) {
	_, err := NewS3Saver(context.Background(), S3Config{})
	require.Error(t, err)
}

func TestNewS3Saver_ConfigError(t *testing.T) {
	old := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = old })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Saver(context.Background(), S3Config{Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load aws config")
}

func TestNewS3Saver_StaticCredentials(t *testing.T) {
	old := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = old })
	var applied config.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&applied))
		}
		return aws.Config{Region: applied.Region}, nil
	}

	s, err := NewS3Saver(context.Background(), S3Config{
		Bucket: "b", Region: "eu-central-1", Endpoint: "http://localhost:9000",
		AccessKeyID: "minio", SecretAccessKey: "minio123",
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "eu-central-1", applied.Region)

	creds, err := applied.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "minio", creds.AccessKeyID)
}

func TestHTTPSaver_PutsUnderBaseURL(t *testing.T) {
	var gotPath, gotQuery, gotCT string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	s := HTTPSaver{BaseURL: ts.URL + "/dav/exports?tag=q1", Client: ts.Client()}
	loc, err := s.Save(context.Background(), File{Name: "employee_7_payroll.csv", ContentType: MIMECSV, Data: []byte("id\n7")})
	require.NoError(t, err)

	assert.Equal(t, ts.URL+"/dav/exports/employee_7_payroll.csv?tag=q1", loc)
	assert.Equal(t, "/dav/exports/employee_7_payroll.csv", gotPath)
	assert.Equal(t, "tag=q1", gotQuery)
	assert.Equal(t, MIMECSV, gotCT)
	assert.Equal(t, "id\n7", string(gotBody))
}

func TestHTTPSaver_RejectedUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "read only", http.StatusMethodNotAllowed)
	}))
	defer ts.Close()

	_, err := HTTPSaver{BaseURL: ts.URL, Client: ts.Client()}.Save(context.Background(), File{Name: "x.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "405")
}
