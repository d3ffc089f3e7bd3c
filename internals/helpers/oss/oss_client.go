package oss

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

var _ AssetStore = (*OSSService)(nil)

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// BucketExists is a boot-time check only; bucket creation is an ops step.
func (s *OSSService) BucketExists() (bool, error) {
	return s.Client.IsBucketExist(s.BucketName)
}

// Upload stores the object with a long-lived public cache directive and
// logs progress as a 0-100 percentage.
func (s *OSSService) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
		oss.Progress(&progressLogger{key: key}),
	}
	return s.Bucket.PutObject(s.withPrefix(key), r, opts...)
}

func (s *OSSService) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			full = append(full, s.withPrefix(k))
		}
	}
	_, err := s.Bucket.DeleteObjects(full, oss.WithContext(ctx))
	return err
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	key = s.withPrefix(key)
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *OSSService) KeyFromURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	key := publicURL
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			key = strings.TrimPrefix(publicURL, base)
			return s.stripPrefix(key), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return s.stripPrefix(u[i+1:]), nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

func (s *OSSService) withPrefix(key string) string {
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}

func (s *OSSService) stripPrefix(key string) string {
	if s.Prefix == "" {
		return key
	}
	return strings.TrimPrefix(key, s.Prefix+"/")
}

/* =======================================================================
   Progress listener (UI gauge is log-only on the server side)
======================================================================= */

type progressLogger struct {
	key  string
	last int
}

func (p *progressLogger) ProgressChanged(ev *oss.ProgressEvent) {
	if ev.TotalBytes <= 0 {
		return
	}
	pct := int(ev.ConsumedBytes * 100 / ev.TotalBytes)
	if pct >= p.last+25 || ev.EventType == oss.TransferCompletedEvent {
		log.Printf("[OSS] upload %s %d%%", p.key, pct)
		p.last = pct
	}
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }
