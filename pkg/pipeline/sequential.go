// Package pipeline processa itens um de cada vez com um intervalo fixo entre eles,
// respeitando o limite de requisições das APIs de anúncios.
package pipeline

import (
	"context"
	"time"
)

// Sleeper aguarda o intervalo ou o cancelamento do contexto
type Sleeper func(ctx context.Context, d time.Duration) error

type Option[T any] func(*Sequential[T])

// WithSleeper substitui a espera padrão. Usado nos testes para não depender do relógio.
func WithSleeper[T any](s Sleeper) Option[T] {
	return func(p *Sequential[T]) {
		p.sleep = s
	}
}

// Sequential executa uma função por item, na ordem recebida, com Delay entre itens
type Sequential[T any] struct {
	delay time.Duration
	sleep Sleeper
}

func NewSequential[T any](delay time.Duration, opts ...Option[T]) *Sequential[T] {
	p := &Sequential[T]{
		delay: delay,
		sleep: ContextSleep,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Sequential[T]) Delay() time.Duration {
	return p.delay
}

// Run chama fn para todos os itens, um por vez. Não há espera depois do último item.
// O cancelamento do contexto apenas encurta as esperas: fn continua sendo chamada para cada item
// e decide como reportar o contexto cancelado, para que a contagem de resultados feche com o total.
func (p *Sequential[T]) Run(ctx context.Context, items []T, fn func(ctx context.Context, index int, item T)) {
	for i, item := range items {
		fn(ctx, i, item)

		if i < len(items)-1 && p.delay > 0 {
			_ = p.sleep(ctx, p.delay)
		}
	}
}

func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
