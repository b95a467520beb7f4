package revalidate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"onlinedaku/internal/pkg/config"
	"onlinedaku/internal/pkg/worker"
	"onlinedaku/pkg/logger"
	"onlinedaku/pkg/metrics"

	"go.uber.org/zap"
)

// Trigger 内容变更后通知前台渲染层刷新页面缓存。
// 调用是异步尽力而为的：失败只记录日志和指标，不影响主流程。
type Trigger struct {
	pool   *worker.Pool
	client *http.Client
	url    string
	secret string
}

// payload 刷新请求体，path/tag 至少提供其一
type payload struct {
	Path   string `json:"path,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Secret string `json:"secret"`
}

// NewTrigger 创建刷新触发器，url 未配置时所有调用为 no-op
func NewTrigger(pool *worker.Pool) *Trigger {
	cfg := config.GlobalConfig.Revalidate
	return &Trigger{
		pool:   pool,
		client: &http.Client{Timeout: 10 * time.Second},
		url:    cfg.URL,
		secret: cfg.Secret,
	}
}

// Path 请求刷新指定路径
func (t *Trigger) Path(path string) {
	t.enqueue(path, "")
}

// Tag 请求按标签刷新
func (t *Trigger) Tag(tag string) {
	t.enqueue("", tag)
}

func (t *Trigger) enqueue(path, tag string) {
	if t.url == "" {
		return
	}

	name := "revalidate:" + path + tag
	t.pool.Submit(worker.Task{
		Name: name,
		Run: func() error {
			return t.send(path, tag)
		},
	})
}

func (t *Trigger) send(path, tag string) error {
	body, err := json.Marshal(payload{Path: path, Tag: tag, Secret: t.secret})
	if err != nil {
		return err
	}

	resp, err := t.client.Post(t.url, "application/json", bytes.NewReader(body))
	if err != nil {
		metrics.Default().RecordRevalidation("failure")
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		metrics.Default().RecordRevalidation("failure")
		return fmt.Errorf("revalidation endpoint returned %d", resp.StatusCode)
	}

	metrics.Default().RecordRevalidation("success")
	logger.Log.Info("Revalidation requested",
		zap.String("path", path), zap.String("tag", tag))
	return nil
}
