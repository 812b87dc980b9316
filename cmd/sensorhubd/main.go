// cmd/sensorhubd/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/sensorwire/internal/config"
	"github.com/tamzrod/sensorwire/internal/forwarder"
	fmodbus "github.com/tamzrod/sensorwire/internal/forwarder/modbus"
	"github.com/tamzrod/sensorwire/internal/listener"
	lserial "github.com/tamzrod/sensorwire/internal/listener/serial"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: sensorhubd <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	level, err := log.ParseLevel(cfg.Gateway.Log.Level)
	if err != nil {
		log.Fatalf("bad log level %q: %v", cfg.Gateway.Log.Level, err)
	}
	log.SetLevel(level)

	// --------------------
	// Serial source
	// --------------------

	l := cfg.Gateway.Listen
	port, err := lserial.Open(lserial.Config{
		Device:   l.Device,
		BaudRate: l.BaudRate,
		DataBits: l.DataBits,
		StopBits: l.StopBits,
		Parity:   l.Parity,
		Timeout:  time.Duration(l.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("serial open failed (device=%s): %v", l.Device, err)
	}
	defer port.Close()

	lst, err := listener.New(port)
	if err != nil {
		log.Fatalf("listener build failed: %v", err)
	}

	// --------------------
	// Modbus sink (optional)
	// --------------------

	var fwd forwarder.Forwarder

	if fc := cfg.Gateway.Forward; fc != nil {
		plan, err := forwarder.BuildPlan(fc)
		if err != nil {
			log.Fatalf("forward plan failed: %v", err)
		}

		client, err := fmodbus.New(fmodbus.Config{
			Endpoint: fc.Endpoint,
			Timeout:  time.Duration(fc.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("modbus connect failed (endpoint=%s): %v", fc.Endpoint, err)
		}
		defer client.Close()

		fwd, err = forwarder.New(plan, client)
		if err != nil {
			log.Fatalf("forwarder build failed: %v", err)
		}

		log.WithField("endpoint", fc.Endpoint).Info("forwarding enabled")
	}

	// --------------------
	// Listen until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := make(chan listener.Event)
	go lst.Run(ctx, out)

	log.WithFields(log.Fields{
		"device": l.Device,
		"baud":   l.BaudRate,
	}).Info("listening")

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return

		case ev := <-out:
			handleEvent(ev, fwd)

			// A port-level failure carries no raw bytes and ends the run.
			if ev.Err != nil && ev.Raw == nil {
				log.Error("serial port lost, exiting")
				return
			}
		}
	}
}

func handleEvent(ev listener.Event, fwd forwarder.Forwarder) {
	if ev.Err != nil {
		log.WithField("raw", fmt.Sprintf("%x", ev.Raw)).
			Warnf("bad packet: %v", ev.Err)
		return
	}

	p := ev.Packet
	log.WithFields(log.Fields{
		"slave":  p.SlaveAddress,
		"type":   p.Type.String(),
		"count":  p.Count(),
		"values": p.Values,
	}).Info("packet received")

	if fwd == nil {
		return
	}

	written, err := fwd.Forward(p)
	if err != nil {
		log.WithField("slave", p.SlaveAddress).Errorf("forward failed: %v", err)
		return
	}
	if !written {
		log.WithField("slave", p.SlaveAddress).Debug("slave not mapped, skipped")
	}
}
