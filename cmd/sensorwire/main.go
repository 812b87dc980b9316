// cmd/sensorwire/main.go
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/sensorwire/internal/batch"
	lserial "github.com/tamzrod/sensorwire/internal/listener/serial"
	"github.com/tamzrod/sensorwire/internal/packet"
)

const usage = `usage:
  sensorwire decode <hex>
  sensorwire encode <csv-file>
  sensorwire send -device <dev> [-baud 9600] <csv-file>`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	switch os.Args[1] {
	case "decode":
		runDecode(os.Args[2:])
	case "encode":
		runEncode(os.Args[2:])
	case "send":
		runSend(os.Args[2:])
	default:
		log.Fatal(usage)
	}
}

// decode prints one packet from its hex form.
func runDecode(args []string) {
	if len(args) != 1 {
		log.Fatal(usage)
	}

	p, err := packet.DecodeHex(args[0])
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	fmt.Printf("slave address: %d\n", p.SlaveAddress)
	fmt.Printf("data type:     %s\n", p.Type)
	fmt.Printf("count:         %d\n", p.Count())
	for i, v := range p.Values {
		fmt.Printf("  [%d] %v\n", i, v)
	}
}

// encode prints one hex frame per CSV row.
func runEncode(args []string) {
	if len(args) != 1 {
		log.Fatal(usage)
	}

	frames := framesFromFile(args[0])
	for _, frame := range frames {
		fmt.Println(hex.EncodeToString(frame))
	}
}

// send writes each CSV row's frame to the serial device.
func runSend(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	device := fs.String("device", "", "serial device")
	baud := fs.Int("baud", 9600, "baud rate")
	if err := fs.Parse(args); err != nil {
		log.Fatal(usage)
	}
	if *device == "" || fs.NArg() != 1 {
		log.Fatal(usage)
	}

	frames := framesFromFile(fs.Arg(0))

	port, err := lserial.Open(lserial.Config{
		Device:   *device,
		BaudRate: *baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  time.Second,
	})
	if err != nil {
		log.Fatalf("serial open failed (device=%s): %v", *device, err)
	}
	defer port.Close()

	for i, frame := range frames {
		if _, err := port.Write(frame); err != nil {
			log.Fatalf("send frame %d failed: %v", i, err)
		}
	}

	log.WithFields(log.Fields{
		"frames": len(frames),
		"device": *device,
	}).Info("sent")
}

func framesFromFile(path string) [][]byte {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	frames, err := batch.ReadPackets(f)
	if err != nil {
		log.Fatalf("encode failed: %v", err)
	}
	return frames
}
