package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger BaaS 可达性探测能力
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthTask BaaS 可达性巡检
// 只记日志不改任何状态，方便在控制台日志里发现 BaaS 掉线
type HealthTask struct {
	client Pinger
	Cron   *cron.Cron
}

// NewHealthTask 创建巡检任务
func NewHealthTask(client Pinger) *HealthTask {
	return &HealthTask{
		client: client,
		Cron:   cron.New(cron.WithSeconds()),
	}
}

// Start 启动巡检：立即执行一次，之后每 5 分钟一次
func (t *HealthTask) Start() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		t.Execute(ctx)
	}()

	_, err := t.Cron.AddFunc("0 */5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		t.Execute(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动 HealthTask: %v", err)
	}

	t.Cron.Start()
	log.Println("[Health] BaaS 巡检任务已启动 (每5分钟一次)")
}

// Stop 停止调度
func (t *HealthTask) Stop() {
	t.Cron.Stop()
}

// Execute 执行一次探测
func (t *HealthTask) Execute(ctx context.Context) {
	if err := t.client.Ping(ctx); err != nil {
		log.Printf("[Health] BaaS 不可达: %v", err)
		return
	}
	log.Println("[Health] BaaS 正常")
}
