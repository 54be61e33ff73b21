package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/nominasur/turnos/backend/internal/config"
	"github.com/nominasur/turnos/backend/internal/domain"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no se pudo crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no se pudo conectar al servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar a rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue",
		true,  // durable
		false, // autoDelete en false para no perder la cola sin consumidores
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // etiqueta asignada por rabbitmq
		false, // autoAck en false, confirmamos a mano
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo consumir la cola", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("no se pudo deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no se pudo fijar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("no se pudo fijar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "create_employee":
					tmpl, err := template.ParseFiles("./templates/cuenta_nueva.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla de correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Turnos NominaSur - Datos de su cuenta")
				case "reset_password":
					tmpl, err := template.ParseFiles("./templates/restablecer_clave.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla de correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Turnos NominaSur - Restablecer contraseña")
				case "change_email":
					tmpl, err := template.ParseFiles("./templates/cambio_correo.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla de correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Turnos NominaSur - Cambio de correo")
				case "schedule_assigned":
					tmpl, err := template.ParseFiles("./templates/turno_asignado.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla de correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Turnos NominaSur - Nuevo turno asignado")
				default:
					logger.Error("tipo de correo no soportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("no se pudo enviar el correo", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // reencolar
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	slog.Info("apagando el mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker apagado correctamente")
}
