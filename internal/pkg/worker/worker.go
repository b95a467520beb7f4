package worker

import (
	"time"

	"onlinedaku/pkg/logger"

	"go.uber.org/zap"
)

// Task 后台任务，Run 返回错误时按 Retry 计数重试
type Task struct {
	Name  string
	Run   func() error
	Retry int // 已重试次数
}

// Pool 后台任务池：内容变更后的页面刷新等尽力而为型副作用走这里
type Pool struct {
	TaskQueue  chan Task
	RetryQueue chan Task // 重试队列
	WorkerNum  int
	MaxRetry   int // 最大重试次数
}

func NewPool(workerNum int, bufferSize int) *Pool {
	return &Pool{
		TaskQueue:  make(chan Task, bufferSize),
		RetryQueue: make(chan Task, bufferSize/2),
		WorkerNum:  workerNum,
		MaxRetry:   3, // 最多重试3次
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		go p.worker(i)
	}
	// 启动重试处理协程
	go p.retryWorker()
	logger.Log.Info("Worker pool started", zap.Int("workers", p.WorkerNum))
}

func (p *Pool) worker(id int) {
	for task := range p.TaskQueue {
		if err := task.Run(); err != nil {
			logger.Log.Warn("Task failed",
				zap.Int("worker", id),
				zap.String("task", task.Name),
				zap.Error(err))

			// 如果未达到最大重试次数，加入重试队列
			if task.Retry < p.MaxRetry {
				task.Retry++
				select {
				case p.RetryQueue <- task:
				default:
					logger.Log.Error("Retry queue full, task dropped",
						zap.String("task", task.Name), zap.Error(err))
				}
			} else {
				logger.Log.Error("Task exceeded max retries, dropped",
					zap.String("task", task.Name), zap.Error(err))
			}
		}
	}
}

func (p *Pool) retryWorker() {
	for task := range p.RetryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(task.Retry) * time.Second)

		// 重新加入主队列
		select {
		case p.TaskQueue <- task:
		default:
			logger.Log.Error("Main queue full, retried task dropped",
				zap.String("task", task.Name))
		}
	}
}

// Submit 任务入队，队列满时直接丢弃并记录
func (p *Pool) Submit(task Task) {
	select {
	case p.TaskQueue <- task:
		// 任务入队成功
	default:
		logger.Log.Error("Worker pool queue full, dropping task",
			zap.String("task", task.Name))
	}
}
