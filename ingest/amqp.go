// ingest/amqp.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	gomath "math"
	"time"

	"github.com/streadway/amqp"

	"github.com/nasa/daidalus-go/daidalus"
	"github.com/nasa/daidalus-go/math"
)

// LiveFeed is a supplemental ingestion path alongside ReadAll's
// CSV-like file walker (spec.md §6.3): it subscribes to a fanout
// exchange carrying one AircraftState message per update, the
// consumer-side counterpart of a live ADS-B feeder publishing onto
// the same exchange.
type LiveFeed struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// wireState is the JSON shape carried on the wire: plain fields so the
// feeder process doesn't need to depend on this module's internal
// AircraftState type.
type wireState struct {
	Name       string  `json:"name"`
	TimeUnix   float64 `json:"time_unix"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Track      float64 `json:"track"`
	GroundSpeed float64 `json:"ground_speed"`
	VerticalSpeed float64 `json:"vertical_speed"`
}

// DialLiveFeed connects to the broker and declares the fanout exchange
// a feeder publishes AircraftState updates onto, following the same
// Dial/Channel/ExchangeDeclare sequence a Rabbit MQ producer uses.
func DialLiveFeed(conStr, exchange string) (*LiveFeed, error) {
	conn, err := amqp.Dial(conStr)
	if err != nil {
		return nil, fmt.Errorf("dialing broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", false, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}
	return &LiveFeed{conn: conn, channel: ch}, nil
}

// Close releases the channel and connection.
func (f *LiveFeed) Close() {
	f.channel.Close()
	f.conn.Close()
}

// Subscribe declares an exclusive anonymous queue bound to the
// exchange and streams decoded AircraftState values to states until
// ctx is cancelled or the broker connection drops.
func (f *LiveFeed) Subscribe(ctx context.Context, exchange string, states chan<- daidalus.AircraftState) error {
	q, err := f.channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declaring queue: %w", err)
	}
	if err := f.channel.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return fmt.Errorf("binding queue: %w", err)
	}

	deliveries, err := f.channel.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consume: %w", err)
	}

	closures := f.conn.NotifyClose(make(chan *amqp.Error))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-closures:
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var w wireState
				if err := json.Unmarshal(d.Body, &w); err != nil {
					continue
				}
				states <- fromWire(w)
			}
		}
	}()
	return nil
}

func fromWire(w wireState) daidalus.AircraftState {
	rad := math.Radians(w.Track)
	return daidalus.AircraftState{
		ID:       w.Name,
		Frame:    daidalus.FrameGeodesic,
		LatLon:   math.LatLon{w.Longitude, w.Latitude},
		Altitude: w.Altitude,
		GroundVelocity: math.Vec2{
			w.GroundSpeed * gomath.Sin(rad),
			w.GroundSpeed * gomath.Cos(rad),
		},
		VerticalSpeed: w.VerticalSpeed,
		Time:          time.Unix(0, int64(w.TimeUnix*float64(time.Second))),
	}
}
